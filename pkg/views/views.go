package views

import (
	"embed"
	"fmt"
	html "html/template"
	"net/url"
	"strconv"
	"time"

	"github.com/oksasatya/go-user-admin/internal/domain/entity"
)

//go:embed *.tmpl
var FS embed.FS

// Template names, matching the define blocks in the .tmpl files.
const (
	Index      = "index"
	UserCreate = "user_create"
	UserEdit   = "user_edit"
	UserShow   = "user_show"
)

func baseFuncs() map[string]any {
	return map[string]any{
		"deref": func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		},
		"seq": func(from, to int) []int {
			if to < from {
				return nil
			}
			out := make([]int, 0, to-from+1)
			for i := from; i <= to; i++ {
				out = append(out, i)
			}
			return out
		},
		"add":        func(a, b int) int { return a + b },
		"formatTime": func(t time.Time, layout string) string { return t.Format(layout) },
	}
}

// Load parses the embedded template set for gin's HTML renderer.
func Load() (*html.Template, error) {
	tpl, err := html.New("").Funcs(html.FuncMap(baseFuncs())).ParseFS(FS, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tpl, nil
}

// ListPage feeds the index template. Query and Newsletter hold the raw
// request values so the filter form and pagination links echo them back.
type ListPage struct {
	Title      string
	Error      string
	Users      []entity.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
	Query      string
	Newsletter string
}

// PageURL builds a listing link for page n that keeps the active filters.
func (p ListPage) PageURL(n int) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(n))
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Newsletter != "" {
		v.Set("newsletter", p.Newsletter)
	}
	return "/?" + v.Encode()
}

// UserFormPage feeds the create form, echoing the submitted values back
// untrimmed when validation or persistence fails.
type UserFormPage struct {
	Title      string
	Error      string
	Name       string
	Occupation string
	Newsletter bool
}

// UserShowPage feeds the detail template. User is nil on the error path.
type UserShowPage struct {
	Title string
	Error string
	User  *entity.User
}

// UserEditPage feeds the edit template; User.Addresses arrive newest first.
type UserEditPage struct {
	Title string
	Error string
	User  *entity.User
}

package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameForm struct {
	Name string `form:"name" binding:"required,trimmin=2"`
}

func bindForm(t *testing.T, body string, obj any) error {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return binding.Form.Bind(req, obj)
}

func TestTrimMinRejectsWhitespacePadding(t *testing.T) {
	Init()

	var f nameForm
	err := bindForm(t, "name="+url.QueryEscape("  A  "), &f)
	require.Error(t, err)
	assert.Equal(t, "must be at least 2 characters long", ToDetails(err)["name"])
	// the raw value survives for re-rendering
	assert.Equal(t, "  A  ", f.Name)
}

func TestTrimMinAcceptsTrimmedMinimum(t *testing.T) {
	Init()

	var f nameForm
	require.NoError(t, bindForm(t, "name="+url.QueryEscape("  Bo  "), &f))
}

func TestRequiredUsesFormFieldName(t *testing.T) {
	Init()

	var f nameForm
	err := bindForm(t, "", &f)
	require.Error(t, err)
	assert.Equal(t, "is required", ToDetails(err)["name"])
}

func TestToDetailsNonValidatorError(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"form": "invalid input"}, ToDetails(errors.New("boom")))
}

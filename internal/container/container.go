package container

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/oksasatya/go-user-admin/config"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger
	db     *gorm.DB
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetDB(d *gorm.DB)           { db = d }
func GetDB() *gorm.DB            { return db }

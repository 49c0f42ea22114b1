package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("NOTIFY_EMAILS", "")
	t.Setenv("JWT_EXPIRATION", "")
	LoadConfig()

	assert.Equal(t, "/api/v1", MAIN_ROUTES)
	assert.Equal(t, "memory", DBDriver)
	assert.Equal(t, "LOG.CRB", DocUnitCode)
	assert.Equal(t, 465, SMTPPort)
	assert.Empty(t, NotifyEmails)
	assert.Equal(t, 24*time.Hour, TokenTTL())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("SNOWFLAKE_NODE", "7")
	t.Setenv("NOTIFY_EMAILS", " a@example.com, ,b@example.com ")
	t.Setenv("SMTP_PORT", "bukan angka")
	LoadConfig()

	assert.Equal(t, "mysql", DBDriver)
	assert.Equal(t, int64(7), SnowflakeNode)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, NotifyEmails)
	assert.Equal(t, 465, SMTPPort)
}

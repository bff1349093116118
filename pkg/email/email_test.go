package email

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unionsite/pkg/logger"
)

func TestRender(t *testing.T) {
	body, err := Render(TypeResetPassword, EmailData{
		SiteName:   "学生会",
		UserName:   "张三",
		VerifyCode: "042917",
		ExpireTime: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Contains(t, body, "042917")
	assert.Contains(t, body, "2026-03-01 12:30")

	body, err = Render(TypeComplaintReceipt, EmailData{Topic: "食堂<卫生>", Reference: "abc", SiteURL: "https://su.example.edu"})
	require.NoError(t, err)
	assert.Contains(t, body, "食堂&lt;卫生&gt;")
	assert.Contains(t, body, "https://su.example.edu/services")
}

func TestSendEmail_DisabledSkipsSMTP(t *testing.T) {
	svc := NewService(Config{SiteName: "学生会"}, logger.NewNop())
	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.SendWelcomeEmail("a@example.edu", "张三"))
}

func TestBuildMessage(t *testing.T) {
	svc := NewService(Config{From: "noreply@example.edu", FromName: "学生会"}, logger.NewNop())
	msg := svc.buildMessage("a@example.edu", "主题", "<p>hi</p>")

	assert.True(t, strings.HasPrefix(msg, "From: 学生会 <noreply@example.edu>\r\n"))
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>hi</p>")
}

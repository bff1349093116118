package types

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestFieldErrors_SignUp(t *testing.T) {
	err := binding.Validator.ValidateStruct(&SignUpRequest{Email: "not-an-email", Password: "12345"})

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"email":    "邮箱格式不正确",
		"password": "长度不能少于6位",
		"fullName": "不能为空",
		"faculty":  "不能为空",
	}, fields)
}

func TestFieldErrors_ValidSignIn(t *testing.T) {
	err := binding.Validator.ValidateStruct(&SignInRequest{Email: "a@b.co", Password: "123456"})
	assert.NoError(t, err)
}

func TestFieldErrors_EventWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	err := binding.Validator.ValidateStruct(&EventRequest{
		Title:         "迎新晚会",
		DescriptionMD: "欢迎新同学",
		StartAt:       start,
		EndAt:         start.Add(-time.Hour),
		Venue:         "大礼堂",
		Category:      "文艺",
		RSVPOpen:      true,
	})

	fields := FieldErrors(err)
	assert.Equal(t, "不能早于开始时间", fields["endAt"])
	assert.Equal(t, "不能为空", fields["rsvpLink"])
}

func TestFieldErrors_ComplaintStatus(t *testing.T) {
	err := binding.Validator.ValidateStruct(&ComplaintTransitionRequest{ID: 1, Status: "In Review"})
	assert.NoError(t, err)

	err = binding.Validator.ValidateStruct(&ComplaintTransitionRequest{ID: 1, Status: "Reopened"})
	assert.Equal(t, map[string]string{"status": "取值无效"}, FieldErrors(err))
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("unexpected EOF")))
}

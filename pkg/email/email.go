package email

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"unionsite/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Config 邮件配置
type Config struct {
	Host     string // SMTP服务器地址
	Port     int    // SMTP服务器端口
	Username string // 邮箱账号
	Password string // 邮箱密码
	From     string // 发件人
	FromName string // 发件人名称
	SiteName string
	SiteURL  string
}

// EmailType 邮件类型
type EmailType string

const (
	// TypeResetPassword 重置密码验证码邮件
	TypeResetPassword EmailType = "reset_password"
	// TypeWelcome 管理员注册成功邮件
	TypeWelcome EmailType = "register_success"
	// TypeComplaintReceipt 反馈受理回执
	TypeComplaintReceipt EmailType = "complaint_receipt"
)

// EmailData 邮件数据
type EmailData struct {
	To         string    // 收件人
	Subject    string    // 邮件主题
	VerifyCode string    // 验证码
	ExpireTime time.Time // 过期时间
	UserName   string
	Topic      string // 反馈主题
	Reference  string // 反馈受理编号
	Status     string
	SiteName   string
	SiteURL    string
}

// Service 邮件服务
type Service struct {
	config Config
	logger *logger.Logger
}

// NewService 创建邮件服务
func NewService(config Config, logger *logger.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Enabled SMTP是否已配置
func (s *Service) Enabled() bool {
	return s.config.Host != "" && s.config.Username != ""
}

// SendEmail 发送邮件
func (s *Service) SendEmail(emailType EmailType, data EmailData) error {
	data.SiteName = s.config.SiteName
	data.SiteURL = s.config.SiteURL

	if data.Subject == "" {
		data.Subject = defaultSubject(emailType, data)
	}

	content, err := Render(emailType, data)
	if err != nil {
		return err
	}

	if !s.Enabled() {
		s.logger.Warn("SMTP未配置，邮件未发送", "to", data.To, "type", string(emailType))
		return nil
	}

	return s.send(data.To, data.Subject, content)
}

// Render 渲染邮件模板
func Render(emailType EmailType, data EmailData) (string, error) {
	buf := new(bytes.Buffer)
	if err := templates.ExecuteTemplate(buf, string(emailType)+".html", data); err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

func defaultSubject(emailType EmailType, data EmailData) string {
	switch emailType {
	case TypeResetPassword:
		return fmt.Sprintf("%s - 重置密码验证码", data.SiteName)
	case TypeWelcome:
		return fmt.Sprintf("欢迎加入%s管理后台", data.SiteName)
	case TypeComplaintReceipt:
		return fmt.Sprintf("%s - 反馈已受理 %s", data.SiteName, data.Reference)
	}
	return data.SiteName
}

// buildMessage 组装邮件头和正文
func (s *Service) buildMessage(to, subject, body string) string {
	headers := [][2]string{
		{"From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)},
		{"To", to},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}

	var sb strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&sb, "%s: %s\r\n", h[0], h[1])
	}
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return sb.String()
}

// send 通过TLS连接SMTP服务器发送邮件
func (s *Service) send(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		return fmt.Errorf("创建TLS连接失败: %w", err)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("创建SMTP客户端失败: %w", err)
	}
	defer client.Close()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP认证失败: %w", err)
	}
	if err = client.Mail(s.config.From); err != nil {
		return fmt.Errorf("设置发件人失败: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("设置收件人失败: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("准备发送数据失败: %w", err)
	}
	if _, err = w.Write([]byte(s.buildMessage(to, subject, body))); err != nil {
		return fmt.Errorf("写入邮件内容失败: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	s.logger.Info("邮件已发送", "to", to)
	return client.Quit()
}

// SendPasswordResetCode 发送密码重置验证码邮件
func (s *Service) SendPasswordResetCode(to, userName, code string, expireMinutes int) error {
	return s.SendEmail(TypeResetPassword, EmailData{
		To:         to,
		UserName:   userName,
		VerifyCode: code,
		ExpireTime: time.Now().Add(time.Duration(expireMinutes) * time.Minute),
	})
}

// SendWelcomeEmail 发送欢迎邮件
func (s *Service) SendWelcomeEmail(to, userName string) error {
	return s.SendEmail(TypeWelcome, EmailData{To: to, UserName: userName})
}

// SendComplaintReceipt 发送反馈受理回执
func (s *Service) SendComplaintReceipt(to, topic, reference, status string) error {
	return s.SendEmail(TypeComplaintReceipt, EmailData{
		To:        to,
		Topic:     topic,
		Reference: reference,
		Status:    status,
	})
}

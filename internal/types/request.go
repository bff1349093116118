package types

import (
	"time"

	"unionsite/internal/model"
)

// SignInRequest 登录请求
type SignInRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

// SignUpRequest 注册请求
type SignUpRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"fullName" form:"fullName" binding:"required,max=100"`
	Faculty  string `json:"faculty" form:"faculty" binding:"required,max=100"`
}

// ResetPasswordRequest 申请重置密码
type ResetPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

// ConfirmResetPasswordRequest 使用验证码设置新密码
type ConfirmResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required,len=6,numeric"`
	Password string `json:"password" binding:"required,min=6"`
}

// IDRequest 按ID操作的请求，用于删除、激活等
type IDRequest struct {
	ID int64 `json:"id" binding:"required,gt=0"`
}

// ExecutiveRequest 新建或更新干部，更新时需要 id
type ExecutiveRequest struct {
	ID           int64             `json:"id"`
	Slug         string            `json:"slug" binding:"max=120"`
	Name         string            `json:"name" binding:"required,max=100"`
	Role         string            `json:"role" binding:"required,max=100"`
	Faculty      string            `json:"faculty" binding:"max=100"`
	Tier         string            `json:"tier" binding:"required,max=50"`
	TenureStart  time.Time         `json:"tenureStart" binding:"required"`
	TenureEnd    *time.Time        `json:"tenureEnd"`
	Email        string            `json:"email" binding:"omitempty,email"`
	Phone        string            `json:"phone" binding:"max=30"`
	Socials      map[string]string `json:"socials"`
	PhotoURL     string            `json:"photoUrl" binding:"omitempty,url"`
	DisplayOrder int               `json:"displayOrder" binding:"gte=0"`
}

// ToModel 转换为展示结构
func (r ExecutiveRequest) ToModel() *model.Executive {
	return &model.Executive{
		ID:          r.ID,
		Slug:        r.Slug,
		Name:        r.Name,
		Role:        r.Role,
		Faculty:     r.Faculty,
		Tier:        r.Tier,
		TenureStart: r.TenureStart,
		TenureEnd:   r.TenureEnd,
		Contacts: model.Contacts{
			Email:   r.Email,
			Phone:   r.Phone,
			Socials: r.Socials,
		},
		PhotoURL:     r.PhotoURL,
		DisplayOrder: r.DisplayOrder,
	}
}

// NewsRequest 新建或更新新闻
type NewsRequest struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title" binding:"required,max=200"`
	Excerpt     string     `json:"excerpt" binding:"max=500"`
	BodyMD      string     `json:"bodyMd" binding:"required"`
	Tags        []string   `json:"tags" binding:"max=10,dive,required,max=30"`
	CoverURL    string     `json:"coverUrl" binding:"omitempty,url"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// ToModel 转换为展示结构
func (r NewsRequest) ToModel() *model.News {
	return &model.News{
		ID:          r.ID,
		Title:       r.Title,
		Excerpt:     r.Excerpt,
		BodyMD:      r.BodyMD,
		Tags:        model.StringList(r.Tags),
		CoverURL:    r.CoverURL,
		IsPublished: r.IsPublished,
		PublishedAt: r.PublishedAt,
	}
}

// EventRequest 新建或更新活动
type EventRequest struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title" binding:"required,max=200"`
	DescriptionMD string    `json:"descriptionMd" binding:"required"`
	StartAt       time.Time `json:"startAt" binding:"required"`
	EndAt         time.Time `json:"endAt" binding:"required,gtefield=StartAt"`
	Venue         string    `json:"venue" binding:"required,max=200"`
	Category      string    `json:"category" binding:"required,max=50"`
	CoverURL      string    `json:"coverUrl" binding:"omitempty,url"`
	RSVPOpen      bool      `json:"rsvpOpen"`
	RSVPLink      string    `json:"rsvpLink" binding:"required_if=RSVPOpen true,omitempty,url"`
}

// ToModel 转换为展示结构
func (r EventRequest) ToModel() *model.Event {
	return &model.Event{
		ID:            r.ID,
		Title:         r.Title,
		DescriptionMD: r.DescriptionMD,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
		Venue:         r.Venue,
		Category:      r.Category,
		CoverURL:      r.CoverURL,
		RSVPOpen:      r.RSVPOpen,
		RSVPLink:      r.RSVPLink,
	}
}

// SpotlightRequest 新建或更新轮播卡片
type SpotlightRequest struct {
	ID           int64  `json:"id"`
	Title        string `json:"title" binding:"required,max=200"`
	Caption      string `json:"caption" binding:"max=500"`
	ImageURL     string `json:"imageUrl" binding:"required,url"`
	LinkURL      string `json:"linkUrl" binding:"omitempty,url"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
	IsActive     bool   `json:"isActive"`
}

// ToModel 转换为展示结构
func (r SpotlightRequest) ToModel() *model.Spotlight {
	return &model.Spotlight{
		ID:           r.ID,
		Title:        r.Title,
		Caption:      r.Caption,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

// AnnouncementRequest 新建或更新全站公告
type AnnouncementRequest struct {
	ID        int64  `json:"id"`
	Title     string `json:"title" binding:"required,max=200"`
	MessageMD string `json:"messageMd" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=urgent celebration info"`
	IsActive  bool   `json:"isActive"`
}

// ToModel 转换为展示结构
func (r AnnouncementRequest) ToModel() *model.Announcement {
	return &model.Announcement{
		ID:        r.ID,
		Title:     r.Title,
		MessageMD: r.MessageMD,
		Type:      model.AnnouncementType(r.Type),
		IsActive:  r.IsActive,
	}
}

// DocumentRequest 新建或更新文件
type DocumentRequest struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title" binding:"required,max=200"`
	URL      string   `json:"url" binding:"required,url"`
	Tags     []string `json:"tags" binding:"max=10,dive,required,max=30"`
	FileType string   `json:"fileType" binding:"max=20"`
	FileSize int64    `json:"fileSize" binding:"gte=0"`
}

// ToModel 转换为展示结构
func (r DocumentRequest) ToModel() *model.Document {
	return &model.Document{
		ID:       r.ID,
		Title:    r.Title,
		URL:      r.URL,
		Tags:     model.StringList(r.Tags),
		FileType: r.FileType,
		FileSize: r.FileSize,
	}
}

// OpportunityRequest 新建或更新机会
type OpportunityRequest struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title" binding:"required,max=200"`
	Organization string    `json:"organization" binding:"required,max=200"`
	Deadline     time.Time `json:"deadline" binding:"required"`
	Link         string    `json:"link" binding:"required,url"`
	Tags         []string  `json:"tags" binding:"max=10,dive,required,max=30"`
}

// ToModel 转换为展示结构
func (r OpportunityRequest) ToModel() *model.Opportunity {
	return &model.Opportunity{
		ID:           r.ID,
		Title:        r.Title,
		Organization: r.Organization,
		Deadline:     r.Deadline,
		Link:         r.Link,
		Tags:         model.StringList(r.Tags),
	}
}

// ComplaintRequest 学生提交投诉
type ComplaintRequest struct {
	Category     string `json:"category" form:"category" binding:"required,max=50"`
	Subject      string `json:"subject" form:"subject" binding:"required,max=200"`
	Details      string `json:"details" form:"details" binding:"required,min=10,max=5000"`
	ContactEmail string `json:"contactEmail" form:"contactEmail" binding:"omitempty,email"`
}

// ComplaintTransitionRequest 管理员变更投诉状态
type ComplaintTransitionRequest struct {
	ID     int64  `json:"id" binding:"required,gt=0"`
	Status string `json:"status" binding:"required,oneof=Queued 'In Review' Resolved Closed"`
	Note   string `json:"note" binding:"max=1000"`
}

// DeleteUploadRequest 按公开地址删除已上传文件
type DeleteUploadRequest struct {
	URL string `json:"url" binding:"required,url"`
}

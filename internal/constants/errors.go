package constants

// 通用错误消息
const (
	// 认证相关错误
	ErrUnauthorized           = "未授权，请先登录"
	ErrInvalidToken           = "无效的Token"
	ErrInsufficientPermission = "权限不足"
	ErrAuthFailed             = "邮箱或密码错误"
	ErrEmailExists            = "该邮箱已被注册"
	ErrInvalidCode            = "验证码错误或已过期"
	ErrAuthUnavailable        = "认证服务暂时不可用，请稍后重试"
	ErrUnsupported            = "当前认证方式不支持该操作"
	ErrSignUpDisabled         = "未开放注册，请联系现任管理员"

	// 参数相关错误
	ErrInvalidParams  = "参数错误"
	ErrInvalidID      = "无效的ID"
	ErrInvalidRequest = "无效请求格式"

	// 内容相关错误
	ErrNotFound          = "内容不存在"
	ErrComplaintNotFound = "未找到该受理编号"
	ErrInvalidTransition = "投诉状态不允许这样流转"
	ErrLoadFailed        = "加载失败，请稍后刷新重试"
	ErrSaveFailed        = "保存失败，请稍后重试"
	ErrDeleteFailed      = "删除失败，请稍后重试"
	ErrStale             = "内容已被其他管理员修改，请刷新后重试"

	// 上传相关错误
	ErrUploadFailed  = "上传失败，请稍后重试"
	ErrInvalidFolder = "不支持的上传目录"
	ErrFileTooLarge  = "文件过大"
	ErrFileMissing   = "请选择要上传的文件"

	// 系统错误
	ErrInternalServer       = "服务器内部错误"
	ErrOperationTooFrequent = "请求过于频繁，请稍后重试"
	ErrOperationBusy        = "操作进行中，请稍后重试"
)

// 成功消息
const (
	SuccessLogin      = "登录成功"
	SuccessLogout     = "已退出登录"
	SuccessRegister   = "注册成功"
	SuccessCreate     = "创建成功"
	SuccessUpdate     = "更新成功"
	SuccessDelete     = "删除成功"
	SuccessGet        = "获取成功"
	SuccessUpload     = "上传成功"
	SuccessActivate   = "公告已激活"
	SuccessDeactivate = "公告已下线"
	SuccessSubmit     = "提交成功"
	SuccessResetSent  = "如果该邮箱已注册，将收到重置邮件"
	SuccessReset      = "密码重置成功"
)

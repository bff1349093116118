package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// 校验错误使用 json 字段名，便于前端把提示放到对应输入框下
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// FieldErrors 把绑定错误转换为 字段 -> 提示 的映射，非校验错误返回 nil
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, exists := fields[name]; exists {
			continue
		}
		fields[name] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "不能为空"
	case "email":
		return "邮箱格式不正确"
	case "url":
		return "链接格式不正确"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("长度不能少于%s位", fe.Param())
		}
		return fmt.Sprintf("不能小于%s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("长度不能超过%s位", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("最多%s项", fe.Param())
		}
		return fmt.Sprintf("不能大于%s", fe.Param())
	case "len":
		return fmt.Sprintf("长度必须为%s位", fe.Param())
	case "numeric":
		return "只能包含数字"
	case "oneof":
		return "取值无效"
	case "gt", "gte":
		return "取值无效"
	case "gtefield":
		return "不能早于开始时间"
	}
	return "格式错误"
}

package service

import (
	"errors"
	"fmt"
)

// ErrNotFound 资源不存在或不属于当前用户，两种情况对调用方不可区分
var ErrNotFound = errors.New("resource not found")

// RuleError 业务规则错误，Msg 可以直接返回给客户端 (HTTP 400)
type RuleError struct {
	Msg string
}

func (e *RuleError) Error() string {
	return e.Msg
}

func ruleErrf(format string, args ...any) error {
	return &RuleError{Msg: fmt.Sprintf(format, args...)}
}

// IsRuleError 判断是否是业务规则错误
func IsRuleError(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}

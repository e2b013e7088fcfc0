// Copyright 2024 desikart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validation

import (
	"errors"
	"strings"
)

// FieldError 描述单个字段的校验失败
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors 聚合一次校验中所有非法字段,
// 调用方必须在发起任何外部调用之前完成整体校验
type FieldErrors struct {
	Fields []FieldError
}

func (e *FieldErrors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *FieldErrors) HasErrors() bool {
	return len(e.Fields) > 0
}

// AsError 没有任何字段错误时返回 nil
func (e *FieldErrors) AsError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *FieldErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("字段校验失败: ")
	for i, f := range e.Fields {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(f.Field)
		sb.WriteString(": ")
		sb.WriteString(f.Message)
	}
	return sb.String()
}

// From 从err中提取FieldErrors
func From(err error) (*FieldErrors, bool) {
	var fe *FieldErrors
	ok := errors.As(err, &fe)
	return fe, ok
}

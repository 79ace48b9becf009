// Copyright 2023 ecodeclub
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

package authz

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnauthorized = errors.New("没有管理员权限")

// Whitelist 管理员白名单。启动时从配置构建，之后只读，
// 所有管理端操作在访问数据之前先调用 Authorize。
type Whitelist struct {
	uids map[int64]struct{}
}

// NewWhitelist 解析逗号分隔的 uid 列表，非法的条目直接忽略
func NewWhitelist(uidList string) *Whitelist {
	uids := make(map[int64]struct{})
	for _, part := range strings.Split(uidList, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		uid, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		uids[uid] = struct{}{}
	}
	return &Whitelist{uids: uids}
}

func NewWhitelistOf(uids ...int64) *Whitelist {
	res := &Whitelist{uids: make(map[int64]struct{}, len(uids))}
	for _, uid := range uids {
		res.uids[uid] = struct{}{}
	}
	return res
}

func (w *Whitelist) Authorize(uid int64) error {
	if _, ok := w.uids[uid]; !ok {
		return ErrUnauthorized
	}
	return nil
}

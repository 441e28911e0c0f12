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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/talentflow/internal/application/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Applicants"

var exportHeaders = []string{
	"编号", "岗位", "姓名", "邮箱", "电话", "状态", "匹配分", "投递时间",
}

func (s *applicationService) Export(ctx context.Context, jobID int64) ([]byte, error) {
	apps, err := s.repo.ListAllByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("查询岗位投递失败: %w", err)
	}
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	// 新文件自带 Sheet1，直接改名
	if err = f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, app := range apps {
		if err = s.writeRow(f, i+2, app); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(exportSheet, "A", "A", 28)
	_ = f.SetColWidth(exportSheet, "B", "E", 20)
	_ = f.SetColWidth(exportSheet, "H", "H", 20)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("生成 xlsx 失败: %w", err)
	}
	s.logger.Info("导出岗位投递", elog.Int64("jid", jobID), elog.Int("count", len(apps)))
	return buf.Bytes(), nil
}

func (s *applicationService) writeRow(f *excelize.File, row int, app domain.Application) error {
	var score any = ""
	if app.MatchScore != nil {
		score = *app.MatchScore
	}
	values := []any{
		app.Ref,
		app.JobTitle,
		app.ApplicantName,
		app.ApplicantEmail,
		app.ApplicantPhone,
		app.Status.Label(),
		score,
		time.UnixMilli(app.SubmittedAt).Format(time.DateTime),
	}
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(exportSheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

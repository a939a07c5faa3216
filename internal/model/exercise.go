package model

// 练习题型
const (
	ExerciseMultipleChoice = "multiple_choice"
	ExerciseTrueFalse      = "true_false"
)

// Exercise 练习题
type Exercise struct {
	ID            string   `json:"id"`
	SubjectID     string   `json:"subject_id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"` // 正确选项下标，不随列表接口下发
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty"`
}

// [自证通过] internal/model/exercise.go

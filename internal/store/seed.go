package store

import (
	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/user"
)

func intPtr(v int) *int { return &v }

func seedUsers() []user.User {
	return []user.User{
		{ID: "u1", Role: user.RoleTeacher, FullName: "Admin Teacher", Username: "admin"},
		{ID: "u2", Role: user.RoleStudent, FullName: "Nguyễn Văn A", Username: "student1", Class: intPtr(5)},
		{ID: "u3", Role: user.RoleStudent, FullName: "Trần Thị B", Username: "student2", Class: intPtr(12)},
	}
}

func seedQuestions() []question.Question {
	return []question.Question{
		{
			ID:            "q1",
			Grade:         5,
			Type:          question.TypeGrammar,
			Text:          "She _____ to school every day.",
			Options:       []string{"go", "goes", "going", "went"},
			CorrectAnswer: "goes",
			Explanation:   "Thì hiện tại đơn với chủ ngữ số ít 'She' thì động từ thêm 'es'.",
		},
		{
			ID:            "q2",
			Grade:         5,
			Type:          question.TypeVocabulary,
			Text:          "I like to eat _____.",
			Options:       []string{"apples", "books", "pencils", "tables"},
			CorrectAnswer: "apples",
			Explanation:   "Apples là một loại trái cây có thể ăn được.",
		},
		{
			ID:            "q3",
			Grade:         12,
			Type:          question.TypeGrammar,
			Text:          "If I _____ you, I would take the job.",
			Options:       []string{"am", "was", "were", "been"},
			CorrectAnswer: "were",
			Explanation:   `Câu điều kiện loại 2, dùng "were" cho tất cả các ngôi.`,
		},
		{
			ID:            "q4",
			Grade:         12,
			Type:          question.TypeGrammar,
			Text:          "The car _____ by the mechanic yesterday.",
			Options:       []string{"is repaired", "repairs", "was repaired", "repairing"},
			CorrectAnswer: "was repaired",
			Explanation:   "Câu bị động ở thì quá khứ đơn.",
		},
		{
			ID:            "q5",
			Grade:         5,
			Type:          question.TypeGrammar,
			Text:          "They _____ playing football now.",
			Options:       []string{"is", "am", "are", "be"},
			CorrectAnswer: "are",
			Explanation:   `Thì hiện tại tiếp diễn với chủ ngữ số nhiều "They".`,
		},
	}
}

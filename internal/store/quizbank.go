package store

import "github.com/nafeer/studio/internal/entities"

// ─── Questions ───────────────────────────────────────────────────────────────

// AddQuestion appends a question, filling the full default record for any
// zero-valued field: type MCQ, difficulty 1, points 1, 60 estimated seconds,
// RECALL cognitive level, ORIGINAL source, empty concept list.
func (s *Store) AddQuestion(q entities.Question) entities.Question {
	s.mu.Lock()
	if q.ID == "" {
		q.ID = s.newID("q")
	}
	if q.Type == "" {
		q.Type = entities.QuestionMCQ
	}
	if q.CorrectAnswer.IsZero() {
		q.CorrectAnswer = entities.TextAnswer("")
	}
	if q.Difficulty == 0 {
		q.Difficulty = 1
	}
	if q.Points == 0 {
		q.Points = 1
	}
	if q.EstimatedSeconds == 0 {
		q.EstimatedSeconds = 60
	}
	if q.CognitiveLevel == "" {
		q.CognitiveLevel = entities.CognitiveRecall
	}
	if q.Source == "" {
		q.Source = entities.SourceOriginal
	}
	if q.ConceptIDs == nil {
		q.ConceptIDs = []string{}
	}
	s.questions = append(s.questions, q)
	s.mu.Unlock()
	s.notify()
	return q
}

// Questions returns a copy of the question table.
func (s *Store) Questions() []entities.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Question(nil), s.questions...)
}

// QuestionByID looks up a question.
func (s *Store) QuestionByID(id string) (entities.Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Question{}, false
}

// UpdateQuestion applies mutate to the question with the given id.
func (s *Store) UpdateQuestion(id string, mutate func(*entities.Question)) error {
	s.mu.Lock()
	found := false
	for i := range s.questions {
		if s.questions[i].ID == id {
			mutate(&s.questions[i])
			s.questions[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("question", id)
	}
	s.notify()
	return nil
}

// DeleteQuestion removes a question and drops its id from every exam's
// question list. Exams themselves are never cascade-deleted.
func (s *Store) DeleteQuestion(id string) {
	s.mu.Lock()
	s.questions = filterQuestions(s.questions, func(q entities.Question) bool { return q.ID != id })
	for i := range s.exams {
		s.exams[i].QuestionIDs = removeID(s.exams[i].QuestionIDs, id)
	}
	s.mu.Unlock()
	s.notify()
}

// LinkConceptToQuestion adds a concept to a question's concept list.
// Idempotent; returns ErrNotFound when the question does not exist.
func (s *Store) LinkConceptToQuestion(questionID, conceptID string) error {
	return s.UpdateQuestion(questionID, func(q *entities.Question) {
		q.ConceptIDs = appendUnique(q.ConceptIDs, conceptID)
	})
}

// UnlinkConceptFromQuestion removes a concept from a question's concept list.
func (s *Store) UnlinkConceptFromQuestion(questionID, conceptID string) error {
	return s.UpdateQuestion(questionID, func(q *entities.Question) {
		q.ConceptIDs = removeID(q.ConceptIDs, conceptID)
	})
}

// ─── Exams ───────────────────────────────────────────────────────────────────

// AddExam appends an exam, defaulting the source to MINISTRY and the ordered
// question list to empty.
func (s *Store) AddExam(exam entities.Exam) entities.Exam {
	s.mu.Lock()
	if exam.ID == "" {
		exam.ID = s.newID("exam")
	}
	if exam.Source == "" {
		exam.Source = entities.ExamMinistry
	}
	if exam.QuestionIDs == nil {
		exam.QuestionIDs = []string{}
	}
	s.exams = append(s.exams, exam)
	s.mu.Unlock()
	s.notify()
	return exam
}

// Exams returns a copy of the exam table.
func (s *Store) Exams() []entities.Exam {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Exam(nil), s.exams...)
}

// ExamByID looks up an exam.
func (s *Store) ExamByID(id string) (entities.Exam, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.exams {
		if e.ID == id {
			return e, true
		}
	}
	return entities.Exam{}, false
}

// UpdateExam applies mutate to the exam with the given id.
func (s *Store) UpdateExam(id string, mutate func(*entities.Exam)) error {
	s.mu.Lock()
	found := false
	for i := range s.exams {
		if s.exams[i].ID == id {
			mutate(&s.exams[i])
			s.exams[i].ID = id
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return notFound("exam", id)
	}
	s.notify()
	return nil
}

// DeleteExam removes an exam. Its questions stay in the bank.
func (s *Store) DeleteExam(id string) {
	s.mu.Lock()
	s.exams = filterExams(s.exams, func(e entities.Exam) bool { return e.ID != id })
	s.mu.Unlock()
	s.notify()
}

// AddQuestionToExam appends a question id to an exam's ordered list.
// Idempotent; returns ErrNotFound when the exam does not exist.
func (s *Store) AddQuestionToExam(examID, questionID string) error {
	return s.UpdateExam(examID, func(e *entities.Exam) {
		e.QuestionIDs = appendUnique(e.QuestionIDs, questionID)
	})
}

// RemoveQuestionFromExam drops a question id from an exam's ordered list.
func (s *Store) RemoveQuestionFromExam(examID, questionID string) error {
	return s.UpdateExam(examID, func(e *entities.Exam) {
		e.QuestionIDs = removeID(e.QuestionIDs, questionID)
	})
}

func filterQuestions(in []entities.Question, keep func(entities.Question) bool) []entities.Question {
	out := make([]entities.Question, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterExams(in []entities.Exam, keep func(entities.Exam) bool) []entities.Exam {
	out := make([]entities.Exam, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

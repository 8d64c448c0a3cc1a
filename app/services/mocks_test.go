package services

import (
	"errors"
	"sync"

	"empirek/app/notify"
	"empirek/app/repositories/mock"
)

func newMockCommentRepo() *mock.CommentRepository {
	return mock.NewCommentRepository()
}

func newMockFaqRepo() *mock.FaqRepository {
	return mock.NewFaqRepository()
}

func newMockContactRepo() *mock.ContactRepository {
	return mock.NewContactRepository()
}

// fakeMailer records sends and can be switched into failure mode.
type fakeMailer struct {
	mutex sync.Mutex
	fail  bool
	sent  []string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.fail {
		return &notify.DispatchError{Err: errors.New("smtp unreachable")}
	}
	m.sent = append(m.sent, subject)
	return nil
}

func (m *fakeMailer) setFail(fail bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.fail = fail
}

func (m *fakeMailer) sentCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.sent)
}

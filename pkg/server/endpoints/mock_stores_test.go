package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

// MockGrantStore implements store.GrantStore for testing using testify/mock
type MockGrantStore struct {
	mock.Mock
}

var _ store.GrantStore = (*MockGrantStore)(nil)

func NewMockGrantStore() *MockGrantStore {
	return &MockGrantStore{}
}

func (m *MockGrantStore) Granted(role model.Role, permission model.PermissionID) (bool, error) {
	args := m.Called(role, permission)
	return args.Bool(0), args.Error(1)
}

func (m *MockGrantStore) Grants(role model.Role) ([]model.PermissionID, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PermissionID), args.Error(1)
}

func (m *MockGrantStore) Toggle(role model.Role, permission model.PermissionID) (bool, error) {
	args := m.Called(role, permission)
	return args.Bool(0), args.Error(1)
}

func (m *MockGrantStore) Replace(role model.Role, permissions []model.PermissionID) error {
	args := m.Called(role, permissions)
	return args.Error(0)
}

// MockSubmissionStore implements store.SubmissionStore for testing using testify/mock
type MockSubmissionStore struct {
	mock.Mock
}

var _ store.SubmissionStore = (*MockSubmissionStore)(nil)

func NewMockSubmissionStore() *MockSubmissionStore {
	return &MockSubmissionStore{}
}

func (m *MockSubmissionStore) ListSubmissions() ([]model.FormSubmission, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FormSubmission), args.Error(1)
}

func (m *MockSubmissionStore) FetchSubmission(id string) (*model.FormSubmission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FormSubmission), args.Error(1)
}

func (m *MockSubmissionStore) CreateSubmission(sub model.FormSubmission) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubmissionStore) UpdateSubmissionStatus(id string, from, to model.FormStatus) error {
	args := m.Called(id, from, to)
	return args.Error(0)
}

// MockDocumentStore implements store.DocumentStore for testing using testify/mock
type MockDocumentStore struct {
	mock.Mock
}

var _ store.DocumentStore = (*MockDocumentStore)(nil)

func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{}
}

func (m *MockDocumentStore) ListDocuments() ([]model.DocumentEntity, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentEntity), args.Error(1)
}

func (m *MockDocumentStore) FetchDocument(id string) (*model.DocumentEntity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentEntity), args.Error(1)
}

func (m *MockDocumentStore) CreateDocument(doc model.DocumentEntity) error {
	args := m.Called(doc)
	return args.Error(0)
}

func (m *MockDocumentStore) UpdateDocument(doc model.DocumentEntity) error {
	args := m.Called(doc)
	return args.Error(0)
}

// MockUserStore implements store.UserStore for testing using testify/mock
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{}
}

func (m *MockUserStore) ListUsers() ([]model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) FetchUser(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) CreateUser(user model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) UpdateUser(user model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) DeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

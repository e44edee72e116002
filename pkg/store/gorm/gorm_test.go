package gorm

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tripleswitch/complianceos/pkg/model"
	"github.com/tripleswitch/complianceos/pkg/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 db,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)
	return gormDB, mock
}

func TestGrantStore_Granted(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGrantStore(db)

	mock.ExpectQuery(`SELECT count\(1\) FROM "role_permissions" WHERE role = \$1 AND permission = \$2`).
		WithArgs("BREWER", "submit_forms").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	granted, err := s.Granted(model.RoleBrewer, model.PermissionSubmitForms)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantStore_Grants(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewGrantStore(db)

	mock.ExpectQuery(`SELECT \* FROM "role_permissions" WHERE role = \$1`).
		WithArgs("BREWER").
		WillReturnRows(sqlmock.NewRows([]string{"role", "permission"}).
			AddRow("BREWER", "submit_forms").
			AddRow("BREWER", "view_public"))

	grants, err := s.Grants(model.RoleBrewer)
	require.NoError(t, err)
	assert.Equal(t, []model.PermissionID{model.PermissionViewPublic, model.PermissionSubmitForms}, grants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantStore_Toggle(t *testing.T) {
	t.Run("revokes an existing grant", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewGrantStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "role_permissions"`).
			WithArgs("BREWER", "submit_forms").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		granted, err := s.Toggle(model.RoleBrewer, model.PermissionSubmitForms)
		require.NoError(t, err)
		assert.False(t, granted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("grants a missing permission", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewGrantStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "role_permissions"`).
			WithArgs("BREWER", "approve_forms").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO "role_permissions"`).
			WithArgs("BREWER", "approve_forms").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		granted, err := s.Toggle(model.RoleBrewer, model.PermissionApproveForms)
		require.NoError(t, err)
		assert.True(t, granted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewGrantStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "role_permissions"`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		_, err := s.Toggle(model.RoleBrewer, model.PermissionApproveForms)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionStore_FetchSubmission(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewSubmissionStore(db)

	cols := []string{"id", "name", "template_name", "status", "submitted_by", "submitted_at", "classification", "fields", "risk_level", "position"}
	mock.ExpectQuery(`SELECT \* FROM "form_submissions" WHERE id = \$1`).
		WithArgs("sub-101").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"sub-101", "Jan 2025 TTB Report", "TTB F 5130.9", "PENDING_APPROVAL", "Dave Grohl",
			"2025-02-01", "RESTRICTED", `[{"id":"f1","label":"Business Name","value":"x","confidence":0.99,"isEdited":false,"required":true}]`,
			"HIGH", 2,
		))

	sub, err := s.FetchSubmission("sub-101")
	require.NoError(t, err)
	assert.Equal(t, model.FormStatusPendingApproval, sub.Status)
	assert.Equal(t, model.ClassificationRestricted, sub.Classification)
	assert.Equal(t, model.RiskHigh, sub.RiskLevel)
	require.Len(t, sub.Fields, 1)
	assert.Equal(t, "Business Name", sub.Fields[0].Label)

	mock.ExpectQuery(`SELECT \* FROM "form_submissions" WHERE id = \$1`).
		WithArgs("sub-999").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = s.FetchSubmission("sub-999")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionStore_UpdateSubmissionStatus(t *testing.T) {
	t.Run("applies when status matches", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewSubmissionStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "form_submissions" SET "status"=\$1 WHERE id = \$2 AND status = \$3`).
			WithArgs("APPROVED", "sub-101", "PENDING_APPROVAL").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := s.UpdateSubmissionStatus("sub-101", model.FormStatusPendingApproval, model.FormStatusApproved)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict when status differs", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewSubmissionStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "form_submissions"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "form_submissions" WHERE id = \$1`).
			WithArgs("sub-102").
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("sub-102", "APPROVED"))

		err := s.UpdateSubmissionStatus("sub-102", model.FormStatusPendingApproval, model.FormStatusRejected)
		assert.ErrorIs(t, err, store.ErrStatusConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionStore_CreateSubmission(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewSubmissionStore(db)

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) \+ 1 FROM "form_submissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "form_submissions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.CreateSubmission(model.FormSubmission{
		ID:             "sub-1a2b3c4d",
		Status:         model.FormStatusPendingApproval,
		Classification: model.ClassificationRestricted,
		RiskLevel:      model.RiskLow,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_UpdateDocument(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewDocumentStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "documents" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := s.UpdateDocument(model.DocumentEntity{ID: "doc-404"})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_DeleteUser(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewUserStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
		WithArgs("u5").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteUser("u5"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

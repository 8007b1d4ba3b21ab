package common

import (
	"rbs/src/db"
	"rbs/src/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAppendChange(t *testing.T) {
	mock := newMockDB()
	mock.ExpectBegin()
	mock.
		ExpectExec(`INSERT INTO "change_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := AppendChange(db.GetDb(), ChangeEntry{
		EntityKind: ENTITY_BOOKING,
		EntityID:   31,
		ChangeType: types.CHANGE_CANCELLED,
		ActorID:    5,
		OldValue:   types.JSONB{"status": "pending"},
		NewValue:   types.JSONB{"status": "cancelled"},
	})
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

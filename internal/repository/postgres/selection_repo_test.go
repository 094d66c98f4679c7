package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/gaegulzip/wowa/internal/model"
)

func TestSelectionRepo_Upsert_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSelectionRepo(db)

	s := &model.WodSelection{
		UserID:       3,
		WodID:        10,
		BoxID:        1,
		Date:         "2025-03-01",
		SnapshotData: testProgram(),
	}
	snapshot, err := json.Marshal(s.SnapshotData)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`ON CONFLICT \(user_id, box_id, date\)`).
		WithArgs(s.UserID, s.WodID, s.BoxID, s.Date, snapshot).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

	require.NoError(t, r.Upsert(context.Background(), s))
	require.Equal(t, int64(5), s.ID)
	require.Equal(t, now, s.CreatedAt)
}

func TestSelectionRepo_ListByUser_Range(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSelectionRepo(db)

	snapshot, err := json.Marshal(testProgram())
	require.NoError(t, err)
	now := time.Now()
	cols := []string{"id", "user_id", "wod_id", "box_id", "date", "snapshot_data", "created_at"}

	mock.ExpectQuery(`FROM wod_selections\s+WHERE user_id=\$1 AND date>=\$2 AND date<=\$3 ORDER BY date`).
		WithArgs(int64(3), "2025-03-01", "2025-03-31").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(5), int64(3), int64(10), int64(1), "2025-03-01", snapshot, now))

	out, err := r.ListByUser(context.Background(), 3, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(10), out[0].WodID)
	require.Equal(t, model.WodTypeAMRAP, out[0].SnapshotData.Type)
}

func TestSelectionRepo_ListByUser_Unbounded(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSelectionRepo(db)

	cols := []string{"id", "user_id", "wod_id", "box_id", "date", "snapshot_data", "created_at"}
	mock.ExpectQuery(`FROM wod_selections\s+WHERE user_id=\$1 ORDER BY date`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(cols))

	out, err := r.ListByUser(context.Background(), 3, "", "")
	require.NoError(t, err)
	require.Empty(t, out)
}

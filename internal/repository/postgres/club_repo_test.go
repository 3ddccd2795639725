package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"algosphere/internal/domain"
)

const testClubAddress = "CLUB7Y6XWZJQH4DT3NIPMQBXCZUWV2LR5EOAKFS3TGGB6UDCM4YHHTSNME"

func TestClubRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		club    *domain.Club
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			club: &domain.Club{Address: testClubAddress, Name: "Tech Club", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO clubs \(address, name, created_at\)`).
					WithArgs(testClubAddress, "Tech Club", createdAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate address",
			club: &domain.Club{Address: testClubAddress, Name: "Tech Club", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO clubs`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrClubAlreadyRegistered,
		},
		{
			name: "db error",
			club: &domain.Club{Address: testClubAddress, Name: "Tech Club", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO clubs`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewClubRepository(db)
			err = repo.Create(ctx, tt.club)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClubRepository_GetByAddress(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		address string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Club
		wantErr error
	}{
		{
			name:    "success",
			address: testClubAddress,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT address, name, created_at`).
					WithArgs(testClubAddress).
					WillReturnRows(sqlmock.NewRows([]string{"address", "name", "created_at"}).
						AddRow(testClubAddress, "Tech Club", createdAt))
			},
			want: &domain.Club{Address: testClubAddress, Name: "Tech Club", CreatedAt: createdAt},
		},
		{
			name:    "not found",
			address: testClubAddress,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT address, name, created_at`).
					WithArgs(testClubAddress).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrClubNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewClubRepository(db)
			got, err := repo.GetByAddress(ctx, tt.address)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

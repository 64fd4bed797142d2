package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/aprec-backend/internal/config"
)

func TestParseSeed_Default(t *testing.T) {
	data, err := parseSeed(defaultSeed)
	require.NoError(t, err)

	assert.NotEmpty(t, data.APClasses)
	assert.NotEmpty(t, data.StudentProfiles)

	offered := 0
	for _, c := range data.APClasses {
		if c.Offered != nil && *c.Offered {
			offered++
		}
	}
	assert.Positive(t, offered)
	assert.Less(t, offered, len(data.APClasses), "default catalog should include unoffered classes")
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "malformed json", raw: `{"apClasses": [`, wantErr: "decode seed"},
		{name: "missing offered", raw: `{"apClasses":[{"name":"AP Biology","description":"Cells"}]}`, wantErr: "apClasses[0].offered"},
		{name: "empty interests", raw: `{"studentProfiles":[{"interests":[],"GPA":3.2}]}`, wantErr: "studentProfiles[0].interests"},
		{name: "gpa out of range", raw: `{"studentProfiles":[{"interests":["art"],"GPA":7}]}`, wantErr: "studentProfiles[0].GPA"},
		{name: "bad grade", raw: `{"studentProfiles":[{"interests":["art"],"GPA":3,"gradeLevel":8}]}`, wantErr: "studentProfiles[0].gradeLevel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSeed([]byte(tt.raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDescribe_Sorted(t *testing.T) {
	got := describe(map[string]string{"b": "second", "a": "first"})
	assert.Equal(t, "a: first; b: second", got)
}

func TestRun_ReturnsErrorsInsteadOfExiting(t *testing.T) {
	// An unreachable database must never be contacted when the seed is bad.
	cfg := &config.Config{DatabaseURL: "postgres://127.0.0.1:1/none?sslmode=disable", MaxDBConns: 1}

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"studentProfiles":[{"interests":[],"GPA":3}]}`), 0o600))

	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{name: "missing file", file: filepath.Join(t.TempDir(), "absent.json"), wantErr: "read seed data"},
		{name: "invalid records", file: bad, wantErr: "invalid seed"},
		{name: "store unreachable", file: "", wantErr: "apply migrations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), cfg, zerolog.Nop(), options{file: tt.file})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_SeedsStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	cfg := &config.Config{DatabaseURL: dsn, MaxDBConns: 2}
	ctx := context.Background()

	require.NoError(t, run(ctx, cfg, zerolog.Nop(), options{reset: true}))
	require.NoError(t, run(ctx, cfg, zerolog.Nop(), options{reset: true}))

	data, err := parseSeed(defaultSeed)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	var classes, profiles int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM ap_classes`).Scan(&classes))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM student_profiles`).Scan(&profiles))
	assert.Equal(t, len(data.APClasses), classes, "reset must replace, not append")
	assert.Equal(t, len(data.StudentProfiles), profiles)
}

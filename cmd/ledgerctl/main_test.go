package main

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/dafibh/fortuna/ledger-gateway/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useBackend(t *testing.T, fb *testutil.FakeBackend, token string) {
	t.Helper()
	viper.Set("api_url", fb.URL())
	viper.Set("timeout", 5*time.Second)
	viper.Set("token", token)
	t.Cleanup(func() {
		viper.Set("api_url", "")
		viper.Set("token", "")
	})
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"3", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 1, 2}, ids)

	_, err = parseIDs([]string{"1", "abc"})
	assert.EqualError(t, err, `invalid category id "abc"`)

	_, err = parseIDs([]string{"99999999999"})
	assert.Error(t, err)
}

func TestBudgetRange(t *testing.T) {
	monthly := domain.BudgetPeriodMonthly
	tests := []struct {
		name   string
		budget domain.Budget
		want   string
	}{
		{
			name:   "recurring",
			budget: domain.Budget{Period: &monthly, StartDate: "2026-10-01T00:00:00", EndDate: "2026-10-31T23:59:59"},
			want:   "Monthly 2026-10-01 → 2026-10-31",
		},
		{
			name:   "custom",
			budget: domain.Budget{StartDate: "2026-10-16", EndDate: "2026-11-16"},
			want:   "2026-10-16 → 2026-11-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, budgetRange(tt.budget))
		})
	}
}

func TestWithSession_RequiresToken(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	useBackend(t, fb, "")

	err := withSession(context.Background(), func(*session.Session) error {
		t.Fatal("callback must not run without a token")
		return nil
	})
	assert.ErrorIs(t, err, errNoToken)
}

func TestWithSession_RevokedToken(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.AddUser("ana@example.com", "s3cret-pass", "")
	token := fb.IssueToken("ana@example.com", time.Hour)
	fb.Revoke(token)
	useBackend(t, fb, token)

	err := withSession(context.Background(), func(*session.Session) error {
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestReorderCategories(t *testing.T) {
	ctx := context.Background()
	fb := testutil.NewFakeBackend(t)
	fb.AddUser("ana@example.com", "s3cret-pass", "")
	food, err := fb.Ledger.CreateCategory(ctx, &domain.CategoryCreate{Name: "Food"})
	require.NoError(t, err)
	rent, err := fb.Ledger.CreateCategory(ctx, &domain.CategoryCreate{Name: "Rent"})
	require.NoError(t, err)
	useBackend(t, fb, fb.IssueToken("ana@example.com", time.Hour))

	var out bytes.Buffer
	cmd := reorderCategoriesCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{itoa(rent.ID), itoa(food.ID)})
	cmd.SetContext(ctx)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Categories reordered")
	assert.Equal(t, 1, fb.Ledger.CallCount("ReorderCategories"))

	categories, err := fb.Ledger.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Rent", categories[0].Name)
	assert.Equal(t, "Food", categories[1].Name)
}

func TestReorderCategories_IncompleteList(t *testing.T) {
	ctx := context.Background()
	fb := testutil.NewFakeBackend(t)
	fb.AddUser("ana@example.com", "s3cret-pass", "")
	food, err := fb.Ledger.CreateCategory(ctx, &domain.CategoryCreate{Name: "Food"})
	require.NoError(t, err)
	_, err = fb.Ledger.CreateCategory(ctx, &domain.CategoryCreate{Name: "Rent"})
	require.NoError(t, err)
	useBackend(t, fb, fb.IssueToken("ana@example.com", time.Hour))

	cmd := reorderCategoriesCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{itoa(food.ID)})
	cmd.SetContext(ctx)

	err = cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
	assert.Equal(t, 0, fb.Ledger.CallCount("ReorderCategories"))
}

func itoa(id int32) string {
	return strconv.Itoa(int(id))
}

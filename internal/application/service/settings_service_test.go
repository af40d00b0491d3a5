package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unitedfert/receipts-api/internal/domain/entity"
	infraRepo "github.com/unitedfert/receipts-api/internal/infrastructure/repository"
	"github.com/unitedfert/receipts-api/pkg/apperror"
	"gorm.io/gorm"
)

func newSettingsService(t *testing.T) (*SettingsService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewSettingsService(infraRepo.NewCompanyRepository(db), infraRepo.NewSystemListRepository(db)), db
}

func TestGetCompanyCreatesDefault(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	company, err := svc.GetCompany(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.DefaultCompanyName, company.Name)
	require.NotZero(t, company.ID)

	// A second read returns the same record, not a new one.
	again, err := svc.GetCompany(ctx)
	require.NoError(t, err)
	require.Equal(t, company.ID, again.ID)
}

func TestUpdateCompanyPartialMerge(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	updated, err := svc.UpdateCompany(ctx, &UpdateCompanyInput{Logo: strPtr("data:image/png;base64,AAAA")})
	require.NoError(t, err)
	require.Equal(t, entity.DefaultCompanyName, updated.Name)
	require.Equal(t, "data:image/png;base64,AAAA", updated.Logo)

	updated, err = svc.UpdateCompany(ctx, &UpdateCompanyInput{Name: strPtr("شركة جديدة")})
	require.NoError(t, err)
	require.Equal(t, "شركة جديدة", updated.Name)
	// Untouched fields survive the merge.
	require.Equal(t, "data:image/png;base64,AAAA", updated.Logo)
}

func TestGetListsSeedsDefaults(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	lists, err := svc.GetLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 4)
	require.Equal(t, []string{"الرياض", "بريدة", "الخرج", "وادي الدواسر", "جدة", "تبوك"}, lists[entity.ListTypeBranches])
	require.Equal(t, []string{"نقداً", "شبكة", "تحويل بنكي", "إيداع نقدي", "شيك"}, lists[entity.ListTypeMethods])
	require.Equal(t, []string{"الراجحي", "الأهلي", "الرياض", "ساب", "الاستثمار"}, lists[entity.ListTypeBanks])
	require.Equal(t, []string{"سداد فواتير", "دفعة من الحساب", "سداد الرصيد"}, lists[entity.ListTypeReasons])
}

func TestUpdateListsLeavesOthersUntouched(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	_, err := svc.GetLists(ctx)
	require.NoError(t, err)

	err = svc.UpdateLists(ctx, map[string][]string{
		entity.ListTypeBanks: {"الراجحي", "الإنماء"},
		"currencies":         {"ريال", "دولار"},
	})
	require.NoError(t, err)

	lists, err := svc.GetLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 5)
	require.Equal(t, []string{"الراجحي", "الإنماء"}, lists[entity.ListTypeBanks])
	require.Equal(t, []string{"ريال", "دولار"}, lists["currencies"])
	// Types not mentioned keep their seeded items.
	require.Equal(t, []string{"نقداً", "شبكة", "تحويل بنكي", "إيداع نقدي", "شيك"}, lists[entity.ListTypeMethods])
}

func TestUpdateListsAllOrNothing(t *testing.T) {
	svc, db := newSettingsService(t)
	ctx := context.Background()

	_, err := svc.GetLists(ctx)
	require.NoError(t, err)

	// Force a failure partway through the batch: any write to the reasons
	// list aborts.
	require.NoError(t, db.Exec(`
		CREATE TRIGGER reject_reasons_update
		BEFORE UPDATE ON system_lists
		WHEN NEW.list_type = 'reasons'
		BEGIN
			SELECT RAISE(ABORT, 'reasons list is locked');
		END`).Error)

	err = svc.UpdateLists(ctx, map[string][]string{
		entity.ListTypeBanks:   {"الإنماء"},
		entity.ListTypeReasons: {"سبب جديد"},
	})
	require.Error(t, err)

	// The failed batch must not leave any list replaced.
	lists, err := svc.GetLists(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"الراجحي", "الأهلي", "الرياض", "ساب", "الاستثمار"}, lists[entity.ListTypeBanks])
	require.Equal(t, []string{"سداد فواتير", "دفعة من الحساب", "سداد الرصيد"}, lists[entity.ListTypeReasons])
}

func newClientService(t *testing.T) *ClientService {
	t.Helper()
	db := setupTestDB(t)
	return NewClientService(infraRepo.NewClientRepository(db))
}

func TestCreateAndGetClient(t *testing.T) {
	svc := newClientService(t)
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &CreateClientInput{
		ClientID: "C-100",
		Name:     "مؤسسة النخيل",
		Phone:    "0501234567",
		Branch:   "الرياض",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetClient(ctx, "C-100")
	require.NoError(t, err)
	require.Equal(t, "مؤسسة النخيل", got.Name)

	_, err = svc.GetClient(ctx, "C-999")
	appErr := apperror.GetAppError(err)
	require.Equal(t, 404, appErr.Code)
	require.Equal(t, "Client not found", appErr.Message)
}

func TestCreateClientValidation(t *testing.T) {
	svc := newClientService(t)
	ctx := context.Background()

	_, err := svc.CreateClient(ctx, &CreateClientInput{Name: "بدون معرف"})
	appErr := apperror.GetAppError(err)
	require.Equal(t, 400, appErr.Code)
	require.Equal(t, "Missing required field: clientId", appErr.Message)

	_, err = svc.CreateClient(ctx, &CreateClientInput{ClientID: "C-1"})
	appErr = apperror.GetAppError(err)
	require.Equal(t, "Missing required field: name", appErr.Message)

	_, err = svc.CreateClient(ctx, &CreateClientInput{ClientID: "C-100", Name: "أ"})
	require.NoError(t, err)
	_, err = svc.CreateClient(ctx, &CreateClientInput{ClientID: "C-100", Name: "ب"})
	appErr = apperror.GetAppError(err)
	require.Equal(t, 400, appErr.Code)
	require.Equal(t, "Client ID already exists", appErr.Message)
}

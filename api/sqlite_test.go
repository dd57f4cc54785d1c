package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lookup "github.com/blnkfinance/purchase-lookup"
	"github.com/blnkfinance/purchase-lookup/database"
	"github.com/blnkfinance/purchase-lookup/internal/request"
	"github.com/blnkfinance/purchase-lookup/model"

	_ "github.com/mattn/go-sqlite3"
)

// setupSQLiteRouter serves the API from a migrated in-memory SQLite database.
func setupSQLiteRouter(t *testing.T, pageSize int) (*gin.Engine, *sqlx.DB) {
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = database.Migrate(db.DB, "sqlite3", migrate.Up)
	require.NoError(t, err)

	ds, err := database.NewDataSource(db, pageSize)
	require.NoError(t, err)
	l, err := lookup.NewLookup(ds)
	require.NoError(t, err)

	return NewAPI(l, testConfig()).Router(), db
}

func insertAccount(t *testing.T, db *sqlx.DB, faker *gofakeit.Faker, number int64, city, lastName string) {
	_, err := db.Exec(`INSERT INTO account (account_number, last_name, first_name, street_address, unit, city, account_state, zip, dob, ssn, email_address, mobile_number)
		VALUES (?, ?, ?, ?, NULL, ?, 'TX', 78701, ?, ?, ?, ?)`,
		number, lastName, faker.FirstName(), faker.Street(), city,
		time.Date(1980, 6, 1, 0, 0, 0, 0, time.UTC), faker.DigitN(9), faker.Email(), faker.DigitN(10))
	require.NoError(t, err)
}

func insertPurchase(t *testing.T, db *sqlx.DB, faker *gofakeit.Faker, account int64, number int32, amount string) {
	at := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC).Add(-time.Duration(number) * time.Minute)
	_, err := db.Exec(`INSERT INTO purchase (account_number, purchase_number, purchase_datetime, purchase_amount, post_date, merchant_number, merchant_name, merchant_state, merchant_category_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'TX', 5411)`,
		account, number, at, amount, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), faker.DigitN(8), faker.Company())
	require.NoError(t, err)
}

func TestSQLite_AccountLookupOverForm(t *testing.T) {
	router, db := setupSQLiteRouter(t, 10)
	faker := gofakeit.New(11)

	insertAccount(t, db, faker, 1, "Austin", "Baker")
	insertAccount(t, db, faker, 2, "Dallas", "Adams")
	insertAccount(t, db, faker, 3, "AUSTIN", "Adams")

	var accounts []model.Account
	resp, err := SetUpTestRequest(TestRequest{
		Router:      router,
		Method:      http.MethodPost,
		Route:       "/account",
		ContentType: "application/x-www-form-urlencoded",
		Payload:     request.ToFormReq(map[string]interface{}{"city": "aus", "page": 0}),
		Response:    &accounts,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, accounts, 2)
	// Fallback ordering is by last name.
	assert.Equal(t, int64(3), accounts[0].AccountNumber)
	assert.Equal(t, int64(1), accounts[1].AccountNumber)
}

func TestSQLite_AccountFastPath(t *testing.T) {
	router, db := setupSQLiteRouter(t, 10)
	faker := gofakeit.New(12)

	insertAccount(t, db, faker, 42, "Austin", "Baker")

	var accounts []model.Account
	resp, err := SetUpTestRequest(TestRequest{
		Router:   router,
		Method:   http.MethodPost,
		Route:    "/account",
		Payload:  request.ToFormReq(nil),
		Response: nil,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	body, err := request.ToJsonReq(map[string]interface{}{"account_number": 42, "city": "Houston", "page": 0})
	require.NoError(t, err)
	resp, err = SetUpTestRequest(TestRequest{
		Router:   router,
		Method:   http.MethodPost,
		Route:    "/account",
		Payload:  body,
		Response: &accounts,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Austin", accounts[0].City)
}

func TestSQLite_PurchasePagesAndAmounts(t *testing.T) {
	router, db := setupSQLiteRouter(t, 10)
	faker := gofakeit.New(13)

	insertAccount(t, db, faker, 1, "Austin", "Baker")
	for i := int32(1); i <= 11; i++ {
		insertPurchase(t, db, faker, 1, i, "19.5")
	}

	var first model.PurchasePage
	resp, err := SetUpTestRequest(TestRequest{Router: router, Method: http.MethodGet, Route: "/purchase?account_number=1&page=0", Response: &first})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, first.Eof)
	require.Len(t, first.Purchases, 10)
	assert.Equal(t, "19.50", first.Purchases[0].PurchaseAmount)
	// Newest purchase first.
	assert.Equal(t, int32(1), first.Purchases[0].PurchaseNumber)

	var second model.PurchasePage
	resp, err = SetUpTestRequest(TestRequest{Router: router, Method: http.MethodGet, Route: "/purchase?account_number=1&page=1", Response: &second})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, second.Eof)
	require.Len(t, second.Purchases, 1)
	assert.Equal(t, int32(11), second.Purchases[0].PurchaseNumber)
}

func TestSQLite_PurchaseAmountProximity(t *testing.T) {
	router, db := setupSQLiteRouter(t, 10)
	faker := gofakeit.New(14)

	insertAccount(t, db, faker, 1, "Austin", "Baker")
	insertPurchase(t, db, faker, 1, 1, "5.00")
	insertPurchase(t, db, faker, 1, 2, "1.00")
	insertPurchase(t, db, faker, 1, 3, "3.00")

	var page model.PurchasePage
	resp, err := SetUpTestRequest(TestRequest{Router: router, Method: http.MethodGet, Route: "/purchase?purchase_amount=3&page=0", Response: &page})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, page.Purchases, 3)
	assert.Equal(t, "3.00", page.Purchases[0].PurchaseAmount)
	assert.True(t, page.Eof)
}

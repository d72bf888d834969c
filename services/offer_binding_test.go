package services

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindJSON(t *testing.T, body string, out any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(out)
}

// One malformed variant must fail binding for the whole request body.
func TestCreateOfferBindingValidatesVariants(t *testing.T) {
	full := `{"title":"Basic","offerType":"basic","revisions":2,"deliveryTimeInDays":5,"price":"100.00","features":["Logo"]}`

	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"complete variant", `{"title":"Logo design","details":[` + full + `]}`, false},
		{"no details", `{"title":"Logo design"}`, false},
		{"missing price", `{"title":"Logo design","details":[{"title":"Basic","offerType":"basic","revisions":2,"deliveryTimeInDays":5,"features":[]}]}`, true},
		{"missing revisions", `{"title":"Logo design","details":[{"title":"Basic","offerType":"basic","deliveryTimeInDays":5,"price":"100.00","features":[]}]}`, true},
		{"zero delivery time", `{"title":"Logo design","details":[{"title":"Basic","offerType":"basic","revisions":2,"deliveryTimeInDays":0,"price":"100.00","features":[]}]}`, true},
		{"one bad variant among good ones", `{"title":"Logo design","details":[` + full + `,{"title":"Premium","offerType":"premium"}]}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateOfferReq
			err := bindJSON(t, tc.body, &req)
			if (err != nil) != tc.wantErr {
				t.Errorf("bind err = %v; wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestPatchOfferBindingValidatesVariants(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"offer type alone is enough", `{"details":[{"offerType":"basic","price":"120.00"}]}`, false},
		{"missing offer type", `{"details":[{"price":"120.00"}]}`, true},
		{"zero delivery time", `{"details":[{"offerType":"basic","deliveryTimeInDays":0}]}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req PatchOfferReq
			err := bindJSON(t, tc.body, &req)
			if (err != nil) != tc.wantErr {
				t.Errorf("bind err = %v; wantErr %v", err, tc.wantErr)
			}
		})
	}
}

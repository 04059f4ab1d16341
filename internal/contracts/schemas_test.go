package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "PropertyPayload/1.0.0", generateKeyFromPath("payloads/property/v1.json"))
	assert.Equal(t, "ListingReviewPayload/2.0.0", generateKeyFromPath("payloads/listing-review/v2.json"))
	assert.Equal(t, "", generateKeyFromPath("payloads/flat.json"))
}

func TestRegisteredContracts(t *testing.T) {
	assert.ElementsMatch(t, []string{PropertyPayloadV1, ReviewPayloadV1, ActivityPayloadV1}, Keys())
}

func TestValidatePropertyPayload(t *testing.T) {
	valid := `{
		"propertyName": "Loft",
		"category": "Rent",
		"price": 0,
		"location": "Dhaka",
		"imageLink": "https://img.example.com/loft.jpg",
		"description": "Bright",
		"userName": "Olivia",
		"userEmail": "olivia@example.com",
		"userPhoto": ""
	}`
	require.NoError(t, Validate(PropertyPayloadV1, []byte(valid)))

	cases := map[string]string{
		"negative price":   `{"propertyName":"a","category":"Rent","price":-1,"location":"b","imageLink":"https://x.io/a","description":"c","userName":"u","userEmail":"u@x.io"}`,
		"unknown category": `{"propertyName":"a","category":"Castle","price":1,"location":"b","imageLink":"https://x.io/a","description":"c","userName":"u","userEmail":"u@x.io"}`,
		"missing name":     `{"category":"Rent","price":1,"location":"b","imageLink":"https://x.io/a","description":"c","userName":"u","userEmail":"u@x.io"}`,
		"extra field":      `{"_id":"1","propertyName":"a","category":"Rent","price":1,"location":"b","imageLink":"https://x.io/a","description":"c","userName":"u","userEmail":"u@x.io"}`,
		"not json":         `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate(PropertyPayloadV1, []byte(body)))
		})
	}
}

func TestValidateReviewAndActivity(t *testing.T) {
	review := `{"propertyId":"p1","propertyName":"Villa","reviewerName":"Ann","reviewerEmail":"ann@example.com","reviewerPhoto":"","rating":5,"reviewText":"Great"}`
	assert.NoError(t, Validate(ReviewPayloadV1, []byte(review)))

	badRating := `{"propertyId":"p1","propertyName":"Villa","reviewerName":"Ann","reviewerEmail":"ann@example.com","rating":9,"reviewText":"Great"}`
	assert.Error(t, Validate(ReviewPayloadV1, []byte(badRating)))

	event := `{"event_id":"4f1c2a4e-8a31-4a0b-9d55-2f5c6f9e7a10","type":"property.created","property_id":"p1","actor_email":"a@b.c","occurred_at":"2025-01-02T10:00:00Z"}`
	assert.NoError(t, Validate(ActivityPayloadV1, []byte(event)))

	assert.Error(t, Validate("Unknown/1.0.0", []byte(`{}`)))
}

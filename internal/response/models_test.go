package response

import (
	"encoding/json"
	"testing"

	"brickset/client/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setsBody = `{
  "status": "success",
  "matches": 1,
  "sets": [{
    "setID": 26725,
    "number": "60002",
    "numberVariant": 1,
    "name": "Fire Truck",
    "year": 2013,
    "theme": "City",
    "themeGroup": "Modern day",
    "subtheme": "Fire",
    "category": "Normal",
    "released": true,
    "pieces": 219,
    "minifigs": 2,
    "image": {"thumbnailURL": "https://images.brickset.com/sets/small/60002-1.jpg", "imageURL": "https://images.brickset.com/sets/images/60002-1.jpg"},
    "bricksetURL": "https://brickset.com/sets/60002-1",
    "collection": {"owned": true, "wanted": false, "qtyOwned": 1, "rating": 4, "notes": ""},
    "collections": {"ownedBy": 8234, "wantedBy": 412},
    "LEGOCom": {
      "US": {"retailPrice": 19.99, "dateFirstAvailable": "2013-01-01T00:00:00Z", "dateLastAvailable": "2014-12-31T00:00:00Z"},
      "UK": {"retailPrice": 14.99},
      "CA": {},
      "DE": {}
    },
    "rating": 3.8,
    "reviewCount": 2,
    "packagingType": "Box",
    "availability": "{Not specified}",
    "instructionsCount": 2,
    "additionalImageCount": 5,
    "ageRange": {"min": 5, "max": 12},
    "dimensions": {"height": 19.1, "width": 26.2, "depth": 6.1, "weight": 0.36},
    "barcode": {"EAN": "5702014974135"},
    "extendedData": {"tags": ["Fire Truck", "Firefighter"]},
    "lastUpdated": "2023-04-11T08:41:34.107Z"
  }]
}`

func TestDecode_Sets(t *testing.T) {
	env, err := Decode[SetsResponse]([]byte(setsBody))
	require.NoError(t, err)

	sets, err := env.Result()
	require.NoError(t, err)
	require.Equal(t, 1, sets.Matches)
	require.Len(t, sets.Sets, 1)

	set := sets.Sets[0]
	assert.Equal(t, uint64(26725), set.SetID)
	assert.Equal(t, "60002-1", set.FullNumber())
	assert.Equal(t, "Fire Truck", set.Name.OrElse(""))
	assert.False(t, set.Availability.Valid())
	require.NotNil(t, set.Pieces)
	assert.Equal(t, 219, *set.Pieces)
	require.NotNil(t, set.LEGOCom.US.RetailPrice)
	assert.InDelta(t, 19.99, *set.LEGOCom.US.RetailPrice, 0.001)
	assert.Nil(t, set.LEGOCom.CA.RetailPrice)
	assert.Empty(t, set.Barcode.UPC)
	assert.Equal(t, "5702014974135", set.Barcode.EAN)
	assert.Equal(t, []string{"Fire Truck", "Firefighter"}, set.ExtendedData.Tags)
	require.NotNil(t, set.LastUpdated)
	assert.Equal(t, 2023, set.LastUpdated.Year())
}

func TestDecode_SetToleratesOmittedFields(t *testing.T) {
	env, err := Decode[SetsResponse]([]byte(`{"status":"success","matches":1,"sets":[{"setID":1,"number":"1"}]}`))
	require.NoError(t, err)

	sets, err := env.Result()
	require.NoError(t, err)
	set := sets.Sets[0]
	assert.False(t, set.Name.Valid())
	assert.Nil(t, set.Pieces)
	assert.Nil(t, set.LastUpdated)
}

func TestDecode_Reviews(t *testing.T) {
	body := `{"status":"success","matches":1,"reviews":[{
		"author":"brickfan","datePosted":"2020-02-03T00:00:00Z",
		"rating":{"overall":4,"parts":5,"buildingExperience":0,"playability":3,"valueForMoney":0},
		"title":"Solid","review":"<p>Great set.</p><p>Lots of <b>parts</b>.</p>","HTML":true}]}`

	env, err := Decode[ReviewsResponse]([]byte(body))
	require.NoError(t, err)
	reviews, err := env.Result()
	require.NoError(t, err)

	review := reviews.Reviews[0]
	parts, ok := review.Rating.Parts.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, parts)
	assert.False(t, review.Rating.BuildingExperience.Valid())
	assert.False(t, review.Rating.ValueForMoney.Valid())

	text, err := review.PlainText()
	require.NoError(t, err)
	assert.Equal(t, "Great set.\nLots of parts.", text)
}

func TestReview_PlainTextWithoutHTML(t *testing.T) {
	text, err := Review{Review: "plain <not markup>"}.PlainText()
	require.NoError(t, err)
	assert.Equal(t, "plain <not markup>", text)
}

func TestDecode_AggregatesAndNotes(t *testing.T) {
	themes, err := Decode[ThemesResponse]([]byte(`{"status":"success","matches":1,"themes":[{"theme":"City","setCount":900,"subthemeCount":40,"yearFrom":2005,"yearTo":2025}]}`))
	require.NoError(t, err)
	got, _ := themes.Get()
	assert.Equal(t, "City", got.Themes[0].Name)

	years, err := Decode[YearsResponse]([]byte(`{"status":"success","matches":1,"years":[{"theme":"City","year":2013,"setCount":52}]}`))
	require.NoError(t, err)
	gotYears, _ := years.Get()
	assert.Equal(t, 2013, gotYears.Years[0].Year)

	notes, err := Decode[UserMinifigNotesResponse]([]byte(`{"status":"success","matches":1,"userMinifigNotes":[{"minifigNumber":"cty0001","notes":"spare"}]}`))
	require.NoError(t, err)
	gotNotes, _ := notes.Get()
	assert.Equal(t, "cty0001", gotNotes.UserMinifigNotes[0].MinifigNumber)
}

func TestSet_EncodeDecodeKeepsCodecFields(t *testing.T) {
	original := Set{
		SetID:        1,
		Number:       "10179",
		Name:         codec.Specified("Millennium Falcon"),
		Availability: codec.SentinelString{},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"availability":"{Not specified}"`)

	var decoded Set
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Name, decoded.Name)
	assert.False(t, decoded.Availability.Valid())

	rating := ReviewRating{Overall: 5, Parts: codec.NonZero(4)}
	data, err = json.Marshal(rating)
	require.NoError(t, err)
	assert.JSONEq(t, `{"overall":5,"parts":4,"buildingExperience":0,"playability":0,"valueForMoney":0}`, string(data))

	var back ReviewRating
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rating, back)
}

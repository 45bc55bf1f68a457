package response

import (
	"strconv"
	"time"

	"brickset/client/internal/codec"
)

type CheckKeyResponse struct{}

type LoginResponse struct {
	Hash string `json:"hash"`
}

type CheckUserHashResponse struct{}

type KeyUsageStatsResponse struct {
	Matches     int           `json:"matches"`
	APIKeyUsage []APIKeyUsage `json:"apiKeyUsage"`
}

type APIKeyUsage struct {
	DateStamp time.Time `json:"dateStamp"`
	Count     int       `json:"count"`
}

type SetsResponse struct {
	Matches int   `json:"matches"`
	Sets    []Set `json:"sets"`
}

type AdditionalImagesResponse struct {
	Matches          int     `json:"matches"`
	AdditionalImages []Image `json:"additionalImages"`
}

// InstructionsResponse answers both getInstructions and getInstructions2.
type InstructionsResponse struct {
	Matches      int            `json:"matches"`
	Instructions []Instructions `json:"instructions"`
}

type ReviewsResponse struct {
	Matches int      `json:"matches"`
	Reviews []Review `json:"reviews"`
}

type ThemesResponse struct {
	Matches int     `json:"matches"`
	Themes  []Theme `json:"themes"`
}

type SubthemesResponse struct {
	Matches   int        `json:"matches"`
	Subthemes []Subtheme `json:"subthemes"`
}

type YearsResponse struct {
	Matches int    `json:"matches"`
	Years   []Year `json:"years"`
}

type SetCollectionResponse struct{}

type UserNotesResponse struct {
	Matches   int        `json:"matches"`
	UserNotes []UserNote `json:"userNotes"`
}

type MinifigCollectionResponse struct {
	Matches  int       `json:"matches"`
	Minifigs []Minifig `json:"minifigs"`
}

type SetMinifigCollectionResponse struct{}

type UserMinifigNotesResponse struct {
	Matches          int               `json:"matches"`
	UserMinifigNotes []UserMinifigNote `json:"userMinifigNotes"`
}

// Set is one catalog entry as returned by getSets. Text fields Brickset
// reports as "{Not specified}" decode as absent.
type Set struct {
	SetID                uint64               `json:"setID"`
	Number               string               `json:"number"`
	NumberVariant        int                  `json:"numberVariant"`
	Name                 codec.SentinelString `json:"name"`
	Year                 int                  `json:"year"`
	Theme                codec.SentinelString `json:"theme"`
	ThemeGroup           codec.SentinelString `json:"themeGroup"`
	Subtheme             codec.SentinelString `json:"subtheme"`
	Category             codec.SentinelString `json:"category"`
	Released             bool                 `json:"released"`
	Pieces               *int                 `json:"pieces,omitempty"`
	Minifigs             *int                 `json:"minifigs,omitempty"`
	Image                Image                `json:"image"`
	BricksetURL          string               `json:"bricksetURL"`
	Collection           Collection           `json:"collection"`
	Collections          Collections          `json:"collections"`
	LEGOCom              LEGOCom              `json:"LEGOCom"`
	Rating               float64              `json:"rating"`
	ReviewCount          int                  `json:"reviewCount"`
	PackagingType        codec.SentinelString `json:"packagingType"`
	Availability         codec.SentinelString `json:"availability"`
	InstructionsCount    int                  `json:"instructionsCount"`
	AdditionalImageCount int                  `json:"additionalImageCount"`
	AgeRange             AgeRange             `json:"ageRange"`
	Dimensions           Dimensions           `json:"dimensions"`
	Barcode              Barcode              `json:"barcode"`
	ExtendedData         ExtendedData         `json:"extendedData"`
	LastUpdated          *time.Time           `json:"lastUpdated,omitempty"`
}

// FullNumber is the set number with its variant, e.g. "6876-1".
func (s Set) FullNumber() string {
	return s.Number + "-" + strconv.Itoa(s.NumberVariant)
}

type Image struct {
	ThumbnailURL string `json:"thumbnailURL,omitempty"`
	ImageURL     string `json:"imageURL,omitempty"`
}

// Collection is the logged in user's relationship to a set.
type Collection struct {
	Owned    *bool    `json:"owned,omitempty"`
	Wanted   *bool    `json:"wanted,omitempty"`
	QtyOwned *int     `json:"qtyOwned,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Collections holds community wide ownership counts.
type Collections struct {
	OwnedBy  *int `json:"ownedBy,omitempty"`
	WantedBy *int `json:"wantedBy,omitempty"`
}

// LEGOCom holds LEGO.com pricing per locale.
type LEGOCom struct {
	US LEGOComDetails `json:"US"`
	UK LEGOComDetails `json:"UK"`
	CA LEGOComDetails `json:"CA"`
	DE LEGOComDetails `json:"DE"`
}

type LEGOComDetails struct {
	RetailPrice        *float64   `json:"retailPrice,omitempty"`
	DateFirstAvailable *time.Time `json:"dateFirstAvailable,omitempty"`
	DateLastAvailable  *time.Time `json:"dateLastAvailable,omitempty"`
}

type AgeRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type Dimensions struct {
	Height *float64 `json:"height,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

type Barcode struct {
	UPC string `json:"UPC,omitempty"`
	EAN string `json:"EAN,omitempty"`
}

// ExtendedData is only filled in when the query asked for extended data.
type ExtendedData struct {
	Description string   `json:"description,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Instructions struct {
	URL         string `json:"URL"`
	Description string `json:"description"`
}

type Review struct {
	Author     string       `json:"author"`
	DatePosted time.Time    `json:"datePosted"`
	Rating     ReviewRating `json:"rating"`
	Title      string       `json:"title"`
	Review     string       `json:"review"`
	HTML       bool         `json:"HTML"`
}

// ReviewRating breaks a review score down. Sub-ratings of 0 mean the
// reviewer left them blank.
type ReviewRating struct {
	Overall            int           `json:"overall"`
	Parts              codec.ZeroInt `json:"parts"`
	BuildingExperience codec.ZeroInt `json:"buildingExperience"`
	Playability        codec.ZeroInt `json:"playability"`
	ValueForMoney      codec.ZeroInt `json:"valueForMoney"`
}

type Theme struct {
	Name          string `json:"theme"`
	SetCount      int    `json:"setCount"`
	SubthemeCount int    `json:"subthemeCount"`
	YearFrom      int    `json:"yearFrom"`
	YearTo        int    `json:"yearTo"`
}

type Subtheme struct {
	Theme    string `json:"theme"`
	Name     string `json:"subtheme"`
	SetCount int    `json:"setCount"`
	YearFrom int    `json:"yearFrom"`
	YearTo   int    `json:"yearTo"`
}

type Year struct {
	Theme    string `json:"theme"`
	Year     int    `json:"year"`
	SetCount int    `json:"setCount"`
}

type UserNote struct {
	SetID uint64 `json:"setID"`
	Notes string `json:"notes"`
}

type Minifig struct {
	MinifigNumber string `json:"minifigNumber"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	OwnedInSets   int    `json:"ownedInSets"`
	OwnedLoose    int    `json:"ownedLoose"`
	OwnedTotal    int    `json:"ownedTotal"`
	Wanted        bool   `json:"wanted"`
}

type UserMinifigNote struct {
	MinifigNumber string `json:"minifigNumber"`
	Notes         string `json:"notes"`
}

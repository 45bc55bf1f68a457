package request

import (
	"encoding/json"

	"brickset/client/internal/codec"
)

// SetsParams filters and pages a getSets query. The zero value is an empty
// query; every setter returns an updated copy. Unset fields are left out of
// the encoded JSON.
type SetsParams struct {
	w setsWire
}

type setsWire struct {
	SetID        *uint64       `json:"setID,omitempty"`
	Query        string        `json:"query,omitempty"`
	Theme        string        `json:"theme,omitempty"`
	Subtheme     string        `json:"subtheme,omitempty"`
	SetNumber    string        `json:"setNumber,omitempty"`
	Year         codec.IntList `json:"year,omitempty"`
	Tag          string        `json:"tag,omitempty"`
	Owned        codec.Flag    `json:"owned,omitempty"`
	Wanted       codec.Flag    `json:"wanted,omitempty"`
	UpdatedSince codec.Date    `json:"updatedSince,omitzero"`
	OrderBy      OrderBy       `json:"orderBy,omitempty"`
	PageSize     *int          `json:"pageSize,omitempty"`
	PageNumber   *int          `json:"pageNumber,omitempty"`
	ExtendedData codec.Flag    `json:"extendedData,omitempty"`
}

func NewSetsParams() SetsParams {
	return SetsParams{}
}

// SetID limits results to a single set ID.
func (p SetsParams) SetID(id uint64) SetsParams {
	p.w.SetID = &id
	return p
}

func (p SetsParams) ClearSetID() SetsParams {
	p.w.SetID = nil
	return p
}

// Query searches set number, name, theme and subtheme. Empty clears it.
func (p SetsParams) Query(query string) SetsParams {
	p.w.Query = query
	return p
}

func (p SetsParams) Theme(theme string) SetsParams {
	p.w.Theme = theme
	return p
}

func (p SetsParams) Subtheme(subtheme string) SetsParams {
	p.w.Subtheme = subtheme
	return p
}

// SetNumber is the full set number including the variant, e.g. "6876-1".
func (p SetsParams) SetNumber(number string) SetsParams {
	p.w.SetNumber = number
	return p
}

func (p SetsParams) Year(year int) SetsParams {
	p.w.Year = codec.IntList{year}
	return p
}

// Years filters on several years. A nil or empty slice clears the filter.
func (p SetsParams) Years(years []int) SetsParams {
	if len(years) == 0 {
		p.w.Year = nil
		return p
	}
	p.w.Year = append(codec.IntList(nil), years...)
	return p
}

func (p SetsParams) Tag(tag string) SetsParams {
	p.w.Tag = tag
	return p
}

// OwnedByUser only returns sets owned by the logged in user.
func (p SetsParams) OwnedByUser(owned bool) SetsParams {
	p.w.Owned = codec.Flag(owned)
	return p
}

// WantedByUser only returns sets wanted by the logged in user.
func (p SetsParams) WantedByUser(wanted bool) SetsParams {
	p.w.Wanted = codec.Flag(wanted)
	return p
}

// ExtendedData asks for tags, description and notes.
func (p SetsParams) ExtendedData(extended bool) SetsParams {
	p.w.ExtendedData = codec.Flag(extended)
	return p
}

func (p SetsParams) UpdatedSince(date codec.Date) SetsParams {
	p.w.UpdatedSince = date
	return p
}

func (p SetsParams) ClearUpdatedSince() SetsParams {
	p.w.UpdatedSince = codec.Date{}
	return p
}

// OrderBy sorts the results. The empty OrderBy clears it.
func (p SetsParams) OrderBy(order OrderBy) SetsParams {
	p.w.OrderBy = order
	return p
}

// PageSize sets the number of sets per page. Brickset defaults to 20 and
// caps at MaxPageSize; out of range values are kept and flagged when the
// request is encoded.
func (p SetsParams) PageSize(size int) SetsParams {
	p.w.PageSize = &size
	return p
}

func (p SetsParams) PageNumber(page int) SetsParams {
	p.w.PageNumber = &page
	return p
}

func (p SetsParams) ClearPaging() SetsParams {
	p.w.PageSize = nil
	p.w.PageNumber = nil
	return p
}

// RequiresUserHash reports whether the query filters on the user's collection.
func (p SetsParams) RequiresUserHash() bool {
	return bool(p.w.Owned) || bool(p.w.Wanted)
}

func (p SetsParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.w)
}

func (p *SetsParams) UnmarshalJSON(data []byte) error {
	var w setsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.w = w
	return nil
}

// CollectionParams alters one set in the user's collection. An empty value
// leaves the collection untouched.
type CollectionParams struct {
	w collectionWire
}

type collectionWire struct {
	Own      *int    `json:"own,omitempty"`
	Want     *int    `json:"want,omitempty"`
	QtyOwned *int    `json:"qtyOwned,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
}

func NewCollectionParams() CollectionParams {
	return CollectionParams{}
}

// Owned records that the user owns qty copies of the set. A quantity of zero
// drops the own flag and sends qtyOwned=0.
func (p CollectionParams) Owned(qty int) CollectionParams {
	if qty == 0 {
		p.w.Own = nil
	} else {
		p.w.Own = intPtr(1)
	}
	p.w.QtyOwned = &qty
	return p
}

func (p CollectionParams) Wanted(wanted bool) CollectionParams {
	p.w.Want = boolInt(wanted)
	return p
}

func (p CollectionParams) Notes(notes string) CollectionParams {
	p.w.Notes = &notes
	return p
}

func (p CollectionParams) Rating(rating int) CollectionParams {
	p.w.Rating = &rating
	return p
}

// Empty reports whether the parameters would change nothing.
func (p CollectionParams) Empty() bool {
	return p.w == collectionWire{}
}

func (p CollectionParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.w)
}

func (p *CollectionParams) UnmarshalJSON(data []byte) error {
	var w collectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.w = w
	return nil
}

// MinifigsParams selects minifigs from the user's collection.
type MinifigsParams struct {
	w minifigsWire
}

type minifigsWire struct {
	Owned  codec.Flag `json:"owned,omitempty"`
	Wanted codec.Flag `json:"wanted,omitempty"`
	Query  string     `json:"query,omitempty"`
}

// OwnedMinifigs selects minifigs owned by the user.
func OwnedMinifigs() MinifigsParams {
	return MinifigsParams{w: minifigsWire{Owned: true}}
}

// WantedMinifigs selects minifigs wanted by the user.
func WantedMinifigs() MinifigsParams {
	return MinifigsParams{w: minifigsWire{Wanted: true}}
}

// Query filters by minifig number and name. Empty clears it.
func (p MinifigsParams) Query(query string) MinifigsParams {
	p.w.Query = query
	return p
}

func (p MinifigsParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.w)
}

func (p *MinifigsParams) UnmarshalJSON(data []byte) error {
	var w minifigsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.w = w
	return nil
}

// MinifigCollectionParams alters one minifig in the user's collection.
type MinifigCollectionParams struct {
	w minifigCollectionWire
}

type minifigCollectionWire struct {
	Own      *int    `json:"own,omitempty"`
	Want     *int    `json:"want,omitempty"`
	QtyOwned *int    `json:"qtyOwned,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func NewMinifigCollectionParams() MinifigCollectionParams {
	return MinifigCollectionParams{}
}

// Owned sets the loose quantity owned. Zero removes the minifig from the
// owned list (own=0) instead of storing a quantity.
func (p MinifigCollectionParams) Owned(qty int) MinifigCollectionParams {
	if qty == 0 {
		p.w.Own = intPtr(0)
		p.w.QtyOwned = nil
	} else {
		p.w.Own = nil
		p.w.QtyOwned = &qty
	}
	return p
}

func (p MinifigCollectionParams) Wanted(wanted bool) MinifigCollectionParams {
	p.w.Want = boolInt(wanted)
	return p
}

func (p MinifigCollectionParams) Notes(notes string) MinifigCollectionParams {
	p.w.Notes = &notes
	return p
}

func (p MinifigCollectionParams) Empty() bool {
	return p.w == minifigCollectionWire{}
}

func (p MinifigCollectionParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.w)
}

func (p *MinifigCollectionParams) UnmarshalJSON(data []byte) error {
	var w minifigCollectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.w = w
	return nil
}

func intPtr(n int) *int {
	return &n
}

func boolInt(b bool) *int {
	if b {
		return intPtr(1)
	}
	return intPtr(0)
}

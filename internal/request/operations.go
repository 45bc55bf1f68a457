package request

import "strconv"

type CheckKey struct {
	apiKey string
}

func NewCheckKey(apiKey string) CheckKey {
	return CheckKey{apiKey: apiKey}
}

func (o CheckKey) MethodName() string { return "checkKey" }

func (o CheckKey) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey)
	return nil
}

type Login struct {
	apiKey   string
	username string
	password string
}

func NewLogin(apiKey, username, password string) Login {
	return Login{apiKey: apiKey, username: username, password: password}
}

func (o Login) MethodName() string { return "login" }

func (o Login) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("username", o.username).
		Add("password", o.password)
	return nil
}

type CheckUserHash struct {
	apiKey   string
	userHash string
}

func NewCheckUserHash(apiKey, userHash string) CheckUserHash {
	return CheckUserHash{apiKey: apiKey, userHash: userHash}
}

func (o CheckUserHash) MethodName() string { return "checkUserHash" }

func (o CheckUserHash) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("userHash", o.userHash)
	return nil
}

type GetKeyUsageStats struct {
	apiKey string
}

func NewGetKeyUsageStats(apiKey string) GetKeyUsageStats {
	return GetKeyUsageStats{apiKey: apiKey}
}

func (o GetKeyUsageStats) MethodName() string { return "getKeyUsageStats" }

func (o GetKeyUsageStats) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey)
	return nil
}

// GetSets is the paginated catalog query. userHash may be empty; owned and
// wanted filters are ignored by Brickset without one.
type GetSets struct {
	apiKey   string
	userHash string
	params   SetsParams
}

func NewGetSets(apiKey, userHash string, params SetsParams) GetSets {
	return GetSets{apiKey: apiKey, userHash: userHash, params: params}
}

func (o GetSets) MethodName() string { return "getSets" }

func (o GetSets) EncodeQuery(q *Query) error {
	if o.params.RequiresUserHash() && o.userHash == "" {
		q.Warn(WarningUserHashRequired, "user hash is required when wanted/owned parameters are used")
	}

	if size := o.params.w.PageSize; size != nil {
		switch {
		case *size > MaxPageSize:
			q.Warn(WarningPageSizeOutOfRange, "page size was %d, but the maximum is %d", *size, MaxPageSize)
		case *size == 0:
			q.Warn(WarningPageSizeOutOfRange, "zero page size is not valid")
		}
	}

	q.Add("apiKey", o.apiKey)
	if err := q.AddJSON("params", o.params); err != nil {
		return err
	}
	q.Add("userHash", o.userHash)
	return nil
}

type GetAdditionalImages struct {
	apiKey string
	setID  uint64
}

func NewGetAdditionalImages(apiKey string, setID uint64) GetAdditionalImages {
	return GetAdditionalImages{apiKey: apiKey, setID: setID}
}

func (o GetAdditionalImages) MethodName() string { return "getAdditionalImages" }

func (o GetAdditionalImages) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("setID", strconv.FormatUint(o.setID, 10))
	return nil
}

// GetInstructions looks instructions up by set ID.
type GetInstructions struct {
	apiKey string
	setID  uint64
}

func NewGetInstructions(apiKey string, setID uint64) GetInstructions {
	return GetInstructions{apiKey: apiKey, setID: setID}
}

func (o GetInstructions) MethodName() string { return "getInstructions" }

func (o GetInstructions) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("setID", strconv.FormatUint(o.setID, 10))
	return nil
}

// GetInstructions2 looks instructions up by set number, e.g. "6876-1".
type GetInstructions2 struct {
	apiKey    string
	setNumber string
}

func NewGetInstructions2(apiKey, setNumber string) GetInstructions2 {
	return GetInstructions2{apiKey: apiKey, setNumber: setNumber}
}

func (o GetInstructions2) MethodName() string { return "getInstructions2" }

func (o GetInstructions2) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("setNumber", o.setNumber)
	return nil
}

type GetReviews struct {
	apiKey string
	setID  uint64
}

func NewGetReviews(apiKey string, setID uint64) GetReviews {
	return GetReviews{apiKey: apiKey, setID: setID}
}

func (o GetReviews) MethodName() string { return "getReviews" }

func (o GetReviews) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("setID", strconv.FormatUint(o.setID, 10))
	return nil
}

type GetThemes struct {
	apiKey string
}

func NewGetThemes(apiKey string) GetThemes {
	return GetThemes{apiKey: apiKey}
}

func (o GetThemes) MethodName() string { return "getThemes" }

func (o GetThemes) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey)
	return nil
}

type GetSubthemes struct {
	apiKey string
	theme  string
}

func NewGetSubthemes(apiKey, theme string) GetSubthemes {
	return GetSubthemes{apiKey: apiKey, theme: theme}
}

func (o GetSubthemes) MethodName() string { return "getSubthemes" }

func (o GetSubthemes) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("theme", o.theme)
	return nil
}

type GetYears struct {
	apiKey string
	theme  string
}

func NewGetYears(apiKey, theme string) GetYears {
	return GetYears{apiKey: apiKey, theme: theme}
}

func (o GetYears) MethodName() string { return "getYears" }

func (o GetYears) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("theme", o.theme)
	return nil
}

type SetCollection struct {
	apiKey   string
	userHash string
	setID    uint64
	params   CollectionParams
}

func NewSetCollection(apiKey, userHash string, setID uint64, params CollectionParams) SetCollection {
	return SetCollection{apiKey: apiKey, userHash: userHash, setID: setID, params: params}
}

func (o SetCollection) MethodName() string { return "setCollection" }

func (o SetCollection) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("userHash", o.userHash).
		Add("setID", strconv.FormatUint(o.setID, 10))
	return q.AddJSON("params", o.params)
}

type GetUserNotes struct {
	apiKey   string
	userHash string
}

func NewGetUserNotes(apiKey, userHash string) GetUserNotes {
	return GetUserNotes{apiKey: apiKey, userHash: userHash}
}

func (o GetUserNotes) MethodName() string { return "getUserNotes" }

func (o GetUserNotes) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("userHash", o.userHash)
	return nil
}

type GetMinifigCollection struct {
	apiKey   string
	userHash string
	params   MinifigsParams
}

func NewGetMinifigCollection(apiKey, userHash string, params MinifigsParams) GetMinifigCollection {
	return GetMinifigCollection{apiKey: apiKey, userHash: userHash, params: params}
}

func (o GetMinifigCollection) MethodName() string { return "getMinifigCollection" }

func (o GetMinifigCollection) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("userHash", o.userHash)
	return q.AddJSON("params", o.params)
}

type SetMinifigCollection struct {
	apiKey        string
	userHash      string
	minifigNumber string
	params        MinifigCollectionParams
}

func NewSetMinifigCollection(apiKey, userHash, minifigNumber string, params MinifigCollectionParams) SetMinifigCollection {
	return SetMinifigCollection{apiKey: apiKey, userHash: userHash, minifigNumber: minifigNumber, params: params}
}

func (o SetMinifigCollection) MethodName() string { return "setMinifigCollection" }

func (o SetMinifigCollection) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("userHash", o.userHash).
		Add("minifigNumber", o.minifigNumber)
	return q.AddJSON("params", o.params)
}

type GetUserMinifigNotes struct {
	apiKey   string
	userHash string
}

func NewGetUserMinifigNotes(apiKey, userHash string) GetUserMinifigNotes {
	return GetUserMinifigNotes{apiKey: apiKey, userHash: userHash}
}

func (o GetUserMinifigNotes) MethodName() string { return "getUserMinifigNotes" }

func (o GetUserMinifigNotes) EncodeQuery(q *Query) error {
	q.Add("apiKey", o.apiKey).
		Add("userHash", o.userHash)
	return nil
}

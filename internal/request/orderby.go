package request

// OrderBy is the sort key accepted by getSets.
type OrderBy string

const (
	OrderByNumber          OrderBy = "Number"
	OrderByYearFrom        OrderBy = "YearFrom"
	OrderByPieces          OrderBy = "Pieces"
	OrderByMinifigs        OrderBy = "Minifigs"
	OrderByRating          OrderBy = "Rating"
	OrderByUSRetailPrice   OrderBy = "USRetailPrice"
	OrderByUKRetailPrice   OrderBy = "UKRetailPrice"
	OrderByCARetailPrice   OrderBy = "CARetailPrice"
	OrderByDERetailPrice   OrderBy = "DERetailPrice"
	OrderByFRRetailPrice   OrderBy = "FRRetailPrice"
	OrderByUSPricePerPiece OrderBy = "USPricePerPiece"
	OrderByUKPricePerPiece OrderBy = "UKPricePerPiece"
	OrderByCAPricePerPiece OrderBy = "CAPricePerPiece"
	OrderByDEPricePerPiece OrderBy = "DEPricePerPiece"
	OrderByFRPricePerPiece OrderBy = "FRPricePerPiece"
	OrderByTheme           OrderBy = "Theme"
	OrderBySubtheme        OrderBy = "Subtheme"
	OrderByName            OrderBy = "Name"
	OrderByRandom          OrderBy = "Random"
	OrderByQtyOwned        OrderBy = "QtyOwned"
	OrderByOwnCount        OrderBy = "OwnCount"
	OrderByWantCount       OrderBy = "WantCount"
	OrderByUserRating      OrderBy = "UserRating"
	OrderByCollectionID    OrderBy = "CollectionID"

	OrderByNumberDesc          OrderBy = "NumberDESC"
	OrderByYearFromDesc        OrderBy = "YearFromDESC"
	OrderByPiecesDesc          OrderBy = "PiecesDESC"
	OrderByMinifigsDesc        OrderBy = "MinifigsDESC"
	OrderByRatingDesc          OrderBy = "RatingDESC"
	OrderByUSRetailPriceDesc   OrderBy = "USRetailPriceDESC"
	OrderByUKRetailPriceDesc   OrderBy = "UKRetailPriceDESC"
	OrderByCARetailPriceDesc   OrderBy = "CARetailPriceDESC"
	OrderByDERetailPriceDesc   OrderBy = "DERetailPriceDESC"
	OrderByFRRetailPriceDesc   OrderBy = "FRRetailPriceDESC"
	OrderByUSPricePerPieceDesc OrderBy = "USPricePerPieceDESC"
	OrderByUKPricePerPieceDesc OrderBy = "UKPricePerPieceDESC"
	OrderByCAPricePerPieceDesc OrderBy = "CAPricePerPieceDESC"
	OrderByDEPricePerPieceDesc OrderBy = "DEPricePerPieceDESC"
	OrderByFRPricePerPieceDesc OrderBy = "FRPricePerPieceDESC"
	OrderByThemeDesc           OrderBy = "ThemeDESC"
	OrderBySubthemeDesc        OrderBy = "SubthemeDESC"
	OrderByNameDesc            OrderBy = "NameDESC"
	OrderByRandomDesc          OrderBy = "RandomDESC"
	OrderByQtyOwnedDesc        OrderBy = "QtyOwnedDESC"
	OrderByOwnCountDesc        OrderBy = "OwnCountDESC"
	OrderByWantCountDesc       OrderBy = "WantCountDESC"
	OrderByUserRatingDesc      OrderBy = "UserRatingDESC"
	OrderByCollectionIDDesc    OrderBy = "CollectionIDDESC"
)

// orderPairs lists every ascending ordering next to its descending mirror.
var orderPairs = [...][2]OrderBy{
	{OrderByNumber, OrderByNumberDesc},
	{OrderByYearFrom, OrderByYearFromDesc},
	{OrderByPieces, OrderByPiecesDesc},
	{OrderByMinifigs, OrderByMinifigsDesc},
	{OrderByRating, OrderByRatingDesc},
	{OrderByUSRetailPrice, OrderByUSRetailPriceDesc},
	{OrderByUKRetailPrice, OrderByUKRetailPriceDesc},
	{OrderByCARetailPrice, OrderByCARetailPriceDesc},
	{OrderByDERetailPrice, OrderByDERetailPriceDesc},
	{OrderByFRRetailPrice, OrderByFRRetailPriceDesc},
	{OrderByUSPricePerPiece, OrderByUSPricePerPieceDesc},
	{OrderByUKPricePerPiece, OrderByUKPricePerPieceDesc},
	{OrderByCAPricePerPiece, OrderByCAPricePerPieceDesc},
	{OrderByDEPricePerPiece, OrderByDEPricePerPieceDesc},
	{OrderByFRPricePerPiece, OrderByFRPricePerPieceDesc},
	{OrderByTheme, OrderByThemeDesc},
	{OrderBySubtheme, OrderBySubthemeDesc},
	{OrderByName, OrderByNameDesc},
	{OrderByRandom, OrderByRandomDesc},
	{OrderByQtyOwned, OrderByQtyOwnedDesc},
	{OrderByOwnCount, OrderByOwnCountDesc},
	{OrderByWantCount, OrderByWantCountDesc},
	{OrderByUserRating, OrderByUserRatingDesc},
	{OrderByCollectionID, OrderByCollectionIDDesc},
}

var reversedOrder = func() map[OrderBy]OrderBy {
	m := make(map[OrderBy]OrderBy, 2*len(orderPairs))
	for _, pair := range orderPairs {
		m[pair[0]] = pair[1]
		m[pair[1]] = pair[0]
	}
	return m
}()

// OrderBys returns every known ordering, ascending variants first.
func OrderBys() []OrderBy {
	result := make([]OrderBy, 0, 2*len(orderPairs))
	for _, pair := range orderPairs {
		result = append(result, pair[0])
	}
	for _, pair := range orderPairs {
		result = append(result, pair[1])
	}
	return result
}

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) Valid() bool {
	_, ok := reversedOrder[o]
	return ok
}

// Reversed returns the mirrored ordering, e.g. Number <-> NumberDESC.
// Unknown values are returned unchanged.
func (o OrderBy) Reversed() OrderBy {
	if r, ok := reversedOrder[o]; ok {
		return r
	}
	return o
}

// Descending reports whether o is one of the DESC variants.
func (o OrderBy) Descending() bool {
	for _, pair := range orderPairs {
		if pair[1] == o {
			return true
		}
	}
	return false
}

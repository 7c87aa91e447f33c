package repository

import "gorm.io/gorm"

// 公開条件はここに一箇所だけ置く。
// 各一覧・検索がバラバラにapprovedを見ると条件がズレるため、
// 読み側は必ずこのスコープを通す。

// VisibleShops は公開してよいショップ（承認済みかつactive）。
func VisibleShops(db *gorm.DB) *gorm.DB {
	return db.Where("shops.approved = ? AND shops.active = ?", true, true)
}

// VisibleProducts は公開ショップに属する商品。
// products単体では判定できないのでshopsをJOINする。
func VisibleProducts(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN shops ON shops.id = products.shop_id AND shops.deleted_at IS NULL").
		Scopes(VisibleShops)
}

package catalog

import (
	"time"

	"kart-compare/internal/model"
)

var seedCreatedAt = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 {
	return &v
}

// SeedProducts returns the built-in demo catalogue. Each call returns fresh
// values that the caller may modify.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:            "1",
			Name:          "經典牛仔外套",
			Description:   "經典水洗丹寧布料，四季皆宜的百搭外套。",
			Price:         1280,
			OriginalPrice: ptr(1680),
			Image:         "/images/products/denim-jacket.jpg",
			Images:        []string{"/images/products/denim-jacket.jpg", "/images/products/denim-jacket-back.jpg"},
			Category:      "外套",
			Rating:        4.5,
			Reviews:       128,
			Features:      []string{"100% 純棉丹寧", "經典水洗工藝", "多口袋設計", "可機洗"},
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"淺藍", "深藍", "黑色"},
			InStock:       true,
			CreatedAt:     seedCreatedAt,
		},
		{
			ID:          "2",
			Name:        "純棉圓領T恤",
			Description: "柔軟透氣的日常基本款。",
			Price:       390,
			Image:       "/images/products/cotton-tee.jpg",
			Images:      []string{"/images/products/cotton-tee.jpg"},
			Category:    "上衣",
			Rating:      4.2,
			Reviews:     256,
			Features:    []string{"精梳棉", "透氣舒適", "不易變形"},
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"白色", "黑色", "灰色"},
			InStock:     true,
			CreatedAt:   seedCreatedAt,
		},
		{
			ID:            "3",
			Name:          "運動休閒鞋",
			Description:   "輕量緩震鞋底，運動與日常兩相宜。",
			Price:         2180,
			OriginalPrice: ptr(2580),
			Image:         "/images/products/sneakers.jpg",
			Images:        []string{"/images/products/sneakers.jpg", "/images/products/sneakers-side.jpg"},
			Category:      "鞋類",
			Rating:        4.7,
			Reviews:       342,
			Features:      []string{"輕量化設計", "緩震鞋墊", "防滑大底", "透氣網布"},
			Sizes:         []string{"24", "25", "26", "27", "28"},
			Colors:        []string{"白色", "黑色"},
			InStock:       true,
			CreatedAt:     seedCreatedAt,
		},
		{
			ID:          "4",
			Name:        "真皮斜背包",
			Description: "頭層牛皮製作，容量充足的日常斜背包。",
			Price:       1880,
			Image:       "/images/products/leather-bag.jpg",
			Images:      []string{"/images/products/leather-bag.jpg"},
			Category:    "配件",
			Rating:      4.6,
			Reviews:     89,
			Features:    []string{"頭層牛皮", "可調式背帶", "內層拉鍊袋"},
			Colors:      []string{"棕色", "黑色"},
			InStock:     true,
			CreatedAt:   seedCreatedAt,
		},
		{
			ID:            "5",
			Name:          "高腰直筒牛仔褲",
			Description:   "修飾腿型的高腰直筒剪裁。",
			Price:         990,
			OriginalPrice: ptr(1290),
			Image:         "/images/products/straight-jeans.jpg",
			Images:        []string{"/images/products/straight-jeans.jpg"},
			Category:      "褲裝",
			Rating:        4.3,
			Reviews:       174,
			Features:      []string{"高腰設計", "微彈布料", "直筒剪裁"},
			Sizes:         []string{"25", "26", "27", "28", "29", "30"},
			Colors:        []string{"淺藍", "深藍"},
			InStock:       true,
			CreatedAt:     seedCreatedAt,
		},
		{
			ID:          "6",
			Name:        "羊毛針織毛衣",
			Description: "美麗諾羊毛混紡，保暖不刺癢。",
			Price:       1580,
			Image:       "/images/products/wool-sweater.jpg",
			Images:      []string{"/images/products/wool-sweater.jpg"},
			Category:    "上衣",
			Rating:      4.8,
			Reviews:     63,
			Features:    []string{"美麗諾羊毛混紡", "親膚不刺癢", "手洗建議"},
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"米白", "酒紅", "墨綠"},
			InStock:     false,
			CreatedAt:   seedCreatedAt,
		},
	}
}

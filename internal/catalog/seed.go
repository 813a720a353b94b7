package catalog

// SeedProducts is the default catalog used to populate empty stores.
func SeedProducts() []Product {
	return []Product{
		{ID: "prod-drs-red-001", SKU: "DRS-RED-001", Name: "Summer Floral Red Dress", Description: "A breezy red dress with floral patterns.", Price: 1999.00, Category: "Apparel", Gender: "Women", ImageURL: "/summer_red_floral.png"},
		{ID: "prod-drs-ylw-002", SKU: "DRS-YLW-002", Name: "Sunny Yellow Floral Dress", Description: "Lightweight yellow dress with soft floral prints.", Price: 1899.00, Category: "Apparel", Gender: "Women", ImageURL: "/yellow_floral_dress.png"},
		{ID: "prod-drs-blu-003", SKU: "DRS-BLU-003", Name: "Sky Blue A-Line Dress", Description: "Flowy A-line dress perfect for summer outings.", Price: 2099.00, Category: "Apparel", Gender: "Women", ImageURL: "/blue_aline_dress.png"},
		{ID: "prod-drs-pnk-004", SKU: "DRS-PNK-004", Name: "Blush Pink Casual Dress", Description: "Soft pink casual dress with a relaxed fit.", Price: 1799.00, Category: "Apparel", Gender: "Women", ImageURL: "/pink_casual_dress.png"},
		{ID: "prod-drs-grn-005", SKU: "DRS-GRN-005", Name: "Mint Green Summer Dress", Description: "Breathable cotton dress ideal for warm days.", Price: 1999.00, Category: "Apparel", Gender: "Women", ImageURL: "/mint_green_dress.png"},
		{ID: "prod-shr-blu-002", SKU: "SHR-BLU-002", Name: "Classic Denim Shirt", Description: "Rugged blue denim shirt.", Price: 1299.00, Category: "Apparel", Gender: "Men", ImageURL: "/denim_shirt.png"},
		{ID: "prod-tsh-gry-004", SKU: "TSH-GRY-004", Name: "Grey Cotton Casual T-Shirt", Description: "Soft breathable cotton t-shirt for everyday wear.", Price: 699.00, Category: "Apparel", Gender: "Men", ImageURL: "/grey_cotton_tshirt.png"},
		{ID: "prod-shr-chk-005", SKU: "SHR-CHK-005", Name: "Casual Checkered Shirt", Description: "Relaxed-fit checkered shirt for casual outings.", Price: 1499.00, Category: "Apparel", Gender: "Men", ImageURL: "/checkered_shirt.png"},
		{ID: "prod-polo-nvy-006", SKU: "POLO-NVY-006", Name: "Navy Blue Polo T-Shirt", Description: "Classic polo t-shirt with a comfortable fit.", Price: 999.00, Category: "Apparel", Gender: "Men", ImageURL: "/navy_polo.png"},
		{ID: "prod-run-pro-001", SKU: "RUN-PRO-001", Name: "Runner Pro Shoes", Description: "Lightweight running shoes.", Price: 4999.00, Category: "Footwear", Gender: "Men", ImageURL: "/runner.png"},
		{ID: "prod-snk-blk-002", SKU: "SNK-BLK-002", Name: "Urban Sneakers", Description: "Comfortable black sneakers for daily wear.", Price: 3499.00, Category: "Footwear", Gender: "Unisex", ImageURL: "/urban_sneakers.png"},
		{ID: "prod-shoe-run-003", SKU: "SHOE-RUN-003", Name: "Speedster Running Shoes", Description: "High-performance running shoes for athletes.", Price: 4599.00, Category: "Footwear", Gender: "Men", ImageURL: "/running_shoes.png"},
		{ID: "prod-shoe-frm-004", SKU: "SHOE-FRM-004", Name: "Classic Leather Oxford", Description: "Elegant black leather formal shoes.", Price: 5999.00, Category: "Footwear", Gender: "Men", ImageURL: "/formal_shoes.png"},
		{ID: "prod-shoe-cnv-005", SKU: "SHOE-CNV-005", Name: "Red Canvas Loafers", Description: "Casual canvas loafers for weekend vibes.", Price: 1299.00, Category: "Footwear", Gender: "Women", ImageURL: "/canvas_loafers.png"},
		{ID: "prod-shoe-hl-006", SKU: "SHOE-HL-006", Name: "Elegant Stiletto Heels", Description: "Premium stiletto heels for parties.", Price: 3999.00, Category: "Footwear", Gender: "Women", ImageURL: "/heels.png"},
		{ID: "prod-sp-z-003", SKU: "SP-Z-003", Name: "SmartPhone Z", Description: "Good camera, long battery", Price: 29999.00, Category: "Electronics", ImageURL: "/smartphone.png"},
		{ID: "prod-tsh-wht-003", SKU: "TSH-WHT-003", Name: "Basic White T-Shirt", Description: "Soft cotton everyday t-shirt.", Price: 599.00, Category: "Apparel", Gender: "Men", ImageURL: "/white_tshirt.png"},
	}
}

// SeedInventory is the default per-location stock, keyed by SKU.
func SeedInventory() map[string]map[string]int {
	return map[string]map[string]int{
		"DRS-RED-001":  {"Mall of India": 5, "Main Warehouse": 0},
		"SHR-BLU-002":  {"Main Warehouse": 10},
		"RUN-PRO-001":  {"Store_A": 10, "Warehouse": 5},
		"SP-Z-003":     {"Main Warehouse": 4, "Store_B": 2},
		"DRS-YLW-002":  {"Main Warehouse": 15},
		"DRS-BLU-003":  {"Mall of India": 8},
		"DRS-PNK-004":  {"Store_A": 12},
		"DRS-GRN-005":  {"Warehouse": 20},
		"TSH-GRY-004":  {"Main Warehouse": 30},
		"SHR-CHK-005":  {"Store_B": 10},
		"POLO-NVY-006": {"Mall of India": 25},
		"SHOE-RUN-003": {"Store_A": 15},
		"SHOE-FRM-004": {"Store_B": 8},
		"SHOE-CNV-005": {"Main Warehouse": 50},
		"SHOE-HL-006":  {"Mall of India": 12},
	}
}

package catalog

// seedProducts is the static storefront catalog. Prices are in whole
// rupees; images are served by the frontend from its asset pipeline.
var seedProducts = []Product{
	{
		ID:          "p-1001",
		Title:       "Aurora Wireless Headphones",
		Price:       2999,
		OldPrice:    4499,
		Category:    "Audio",
		Image:       "/images/products/aurora-headphones.jpg",
		IsNew:       true,
		Description: "Over-ear wireless headphones with active noise cancellation and 40h battery.",
		Stock:       34,
	},
	{
		ID:          "p-1002",
		Title:       "Pulse Smartwatch Series 5",
		Price:       8499,
		OldPrice:    9999,
		Category:    "Wearables",
		Image:       "/images/products/pulse-smartwatch.jpg",
		IsNew:       true,
		Description: "AMOLED display, SpO2 tracking and 7-day battery life.",
		Stock:       21,
	},
	{
		ID:          "p-1003",
		Title:       "Nimbus Mechanical Keyboard",
		Price:       5499,
		Category:    "Accessories",
		Image:       "/images/products/nimbus-keyboard.jpg",
		Description: "Hot-swappable switches, per-key RGB, aluminium frame.",
		Stock:       48,
	},
	{
		ID:          "p-1004",
		Title:       "Vertex Gaming Mouse",
		Price:       1899,
		OldPrice:    2499,
		Category:    "Accessories",
		Image:       "/images/products/vertex-mouse.jpg",
		Description: "26K DPI optical sensor at 58 grams.",
		Stock:       75,
	},
	{
		ID:          "p-1005",
		Title:       "Stratos 4K Action Camera",
		Price:       18999,
		Category:    "Cameras",
		Image:       "/images/products/stratos-camera.jpg",
		IsNew:       true,
		Description: "Waterproof 4K60 action camera with horizon lock.",
		Stock:       12,
	},
	{
		ID:          "p-1006",
		Title:       "Echo Street Sneakers",
		Price:       3499,
		OldPrice:    4299,
		Category:    "Footwear",
		Image:       "/images/products/echo-sneakers.jpg",
		Description: "Knit upper, cushioned sole, everyday wear.",
		Stock:       60,
	},
	{
		ID:          "p-1007",
		Title:       "Trail Runner Pro",
		Price:       6299,
		Category:    "Footwear",
		Image:       "/images/products/trail-runner.jpg",
		IsNew:       true,
		Description: "Grip outsole and rock plate for technical trails.",
		Stock:       18,
	},
	{
		ID:          "p-1008",
		Title:       "Drift Denim Jacket",
		Price:       2799,
		Category:    "Fashion",
		Image:       "/images/products/drift-jacket.jpg",
		Description: "Washed denim, relaxed fit.",
		Stock:       40,
	},
	{
		ID:          "p-1009",
		Title:       "Summit Daypack 24L",
		Price:       2199,
		OldPrice:    2899,
		Category:    "Fashion",
		Image:       "/images/products/summit-daypack.jpg",
		Description: "Laptop sleeve, rain cover, lifetime zips.",
		Stock:       55,
	},
	{
		ID:          "p-1010",
		Title:       "Orbit Bluetooth Speaker",
		Price:       4199,
		Category:    "Audio",
		Image:       "/images/products/orbit-speaker.jpg",
		Description: "360-degree sound, IPX7, 20h playtime.",
		Stock:       29,
	},
	{
		ID:          "p-1011",
		Title:       "Lumen Studio Monitor 27\"",
		Price:       24999,
		OldPrice:    28999,
		Category:    "Displays",
		Image:       "/images/products/lumen-monitor.jpg",
		Description: "QHD IPS panel, factory calibrated.",
		Stock:       9,
	},
	{
		ID:          "p-1012",
		Title:       "Halo Earbuds Lite",
		Price:       1499,
		Category:    "Audio",
		Image:       "/images/products/halo-earbuds.jpg",
		IsNew:       true,
		Description: "Compact earbuds with wireless charging case.",
		Stock:       120,
	},
}

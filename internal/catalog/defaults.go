// ABOUTME: Built-in product records served when no catalog file is configured
// ABOUTME: Five laptops in the sub-$1000 video-editing range
package catalog

import "github.com/harper/recommend/internal/models"

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultProducts())
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return c
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Acer Nitro 5",
			Description:   "Gaming Laptop, 15.6\" FHD IPS Display, Intel Core i5-11400H, NVIDIA GeForce RTX 3050, 16GB DDR4, 512GB NVMe SSD",
			Price:         899.99,
			OriginalPrice: 999.99,
			Rating:        4.5,
			ReviewCount:   128,
			Category:      "Laptops",
			Specs: map[string]string{
				"processor": "Intel Core i5-11400H (6 cores, up to 4.5GHz)",
				"storage":   "512GB NVMe SSD",
				"memory":    "16GB DDR4 RAM",
				"graphics":  "NVIDIA GeForce RTX 3050 (4GB GDDR6)",
				"display":   "15.6\" FHD (1920 x 1080) IPS, 144Hz",
				"battery":   "Up to 8 hours battery life",
			},
			Recommendation: "This laptop is recommended for your video editing needs under $1000 because it offers an excellent balance of performance and value. The 6-core Intel processor paired with the NVIDIA RTX 3050 graphics card provides strong rendering capabilities for video editing software like Adobe Premiere Pro and DaVinci Resolve. The 16GB RAM is sufficient for most editing projects, while the 512GB NVMe SSD ensures fast loading times for your footage and projects.",
		},
		{
			ID:            2,
			Name:          "Dell G15 5511",
			Description:   "15.6\" FHD, Intel Core i5-11400H, NVIDIA GeForce RTX 3050 Ti, 16GB RAM, 512GB SSD, Windows 11",
			Price:         949.99,
			OriginalPrice: 1049.99,
			Rating:        4.3,
			ReviewCount:   95,
			Category:      "Laptops",
			Specs: map[string]string{
				"processor": "Intel Core i5-11400H (6 cores, up to 4.5GHz)",
				"storage":   "512GB NVMe SSD",
				"memory":    "16GB DDR4 RAM",
				"graphics":  "NVIDIA GeForce RTX 3050 Ti (4GB GDDR6)",
				"display":   "15.6\" FHD (1920 x 1080) 120Hz",
				"battery":   "Up to 6 hours battery life",
			},
			Recommendation: "This Dell G15 is well-suited for video editing tasks under $1000. It features a slightly better GPU than the Acer Nitro 5 with the RTX 3050 Ti, which offers improved rendering performance. The processor and RAM match our top recommendation, making it excellent for multitasking between editing software and other applications. The slightly lower battery life makes it less portable, but the enhanced graphics capabilities make it worth considering if you prioritize rendering speed.",
		},
		{
			ID:            3,
			Name:          "ASUS TUF Gaming F15",
			Description:   "15.6\" 144Hz FHD Display, Intel Core i7-11800H, GeForce RTX 3050, 16GB DDR4, 512GB PCIe SSD",
			Price:         979.99,
			OriginalPrice: 1099.99,
			Rating:        4.6,
			ReviewCount:   187,
			Category:      "Laptops",
			Specs: map[string]string{
				"processor": "Intel Core i7-11800H (8 cores, up to 4.6GHz)",
				"storage":   "512GB PCIe SSD",
				"memory":    "16GB DDR4 RAM",
				"graphics":  "NVIDIA GeForce RTX 3050 (4GB GDDR6)",
				"display":   "15.6\" FHD (1920 x 1080) 144Hz",
				"battery":   "Up to 7 hours battery life",
			},
			Recommendation: "The ASUS TUF Gaming F15 features a more powerful 8-core Intel i7 processor, making it especially strong for video encoding and rendering tasks. This processor advantage gives it an edge for timeline scrubbing and preview rendering in video editing software. While it has the same RTX 3050 GPU as the Acer Nitro 5, the processor upgrade significantly improves overall editing performance. The military-grade durability also makes it more resistant to wear and tear if you need to edit on the go.",
		},
		{
			ID:            4,
			Name:          "MSI GF63 Thin",
			Description:   "15.6\" FHD Display, Intel Core i5-11400H, NVIDIA GeForce GTX 1650, 8GB DDR4, 256GB NVMe SSD",
			Price:         799.99,
			OriginalPrice: 899.99,
			Rating:        4.2,
			ReviewCount:   143,
			Category:      "Laptops",
			Specs: map[string]string{
				"processor": "Intel Core i5-11400H (6 cores, up to 4.5GHz)",
				"storage":   "256GB NVMe SSD",
				"memory":    "8GB DDR4 RAM",
				"graphics":  "NVIDIA GeForce GTX 1650 (4GB GDDR6)",
				"display":   "15.6\" FHD (1920 x 1080) 60Hz",
				"battery":   "Up to 7 hours battery life",
			},
			Recommendation: "The MSI GF63 Thin is the most budget-friendly option for basic video editing. While it has less RAM and a weaker GPU than our other recommendations, it's still capable of handling 1080p video editing with some optimization. It would benefit from a RAM upgrade to 16GB for better performance with video editing software. The smaller SSD may require an external drive for storing video projects, but the lower price point makes this a good entry-level option.",
		},
		{
			ID:            5,
			Name:          "Lenovo Legion 5",
			Description:   "15.6\" FHD Display, AMD Ryzen 5 5600H, NVIDIA GeForce RTX 3050 Ti, 16GB RAM, 512GB SSD",
			Price:         969.99,
			OriginalPrice: 1079.99,
			Rating:        4.7,
			ReviewCount:   213,
			Category:      "Laptops",
			Specs: map[string]string{
				"processor": "AMD Ryzen 5 5600H (6 cores, up to 4.2GHz)",
				"storage":   "512GB PCIe SSD",
				"memory":    "16GB DDR4 RAM",
				"graphics":  "NVIDIA GeForce RTX 3050 Ti (4GB GDDR6)",
				"display":   "15.6\" FHD (1920 x 1080) 120Hz",
				"battery":   "Up to 8 hours battery life",
			},
			Recommendation: "The Lenovo Legion 5 with its AMD Ryzen 5 processor offers excellent multi-core performance for video editing tasks. AMD processors often perform very well in multi-threaded applications like video rendering. The RTX 3050 Ti GPU and 16GB of RAM make this a strong contender for video editing under $1000. It also features an advanced cooling system that helps maintain performance during long rendering sessions, which is particularly valuable for video editing workloads.",
		},
	}
}

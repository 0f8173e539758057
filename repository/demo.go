package repository

import "github.com/junaidrashid-git/storefront/models"

// DemoProducts is the starter catalog used when SEED_DEMO_PRODUCTS is set.
func DemoProducts() []models.Product {
	return []models.Product{
		{ProductName: "65-Inch MI TV", Price: 64000, Rating: 4.6, ImgSrc: "/images/mi tv.jpg", Description: "4K HDR Android TV"},
		{ProductName: "Wireless Noise-Cancelling Headphones", Price: 24999, Rating: 4.4, ImgSrc: "/images/headphones.jpg", Description: "30-hour battery life"},
		{ProductName: "Mechanical Keyboard RGB", Price: 8999, Rating: 4.2, ImgSrc: "/images/keyboard.jpg", Description: "Per-key RGB lighting"},
		{ProductName: "Ergonomic Office Chair", Price: 15999, Rating: 4.1, ImgSrc: "/images/chair.jpg", Description: "Adjustable lumbar support"},
		{ProductName: "Smart LED Desk Lamp", Price: 2499, Rating: 4.3, ImgSrc: "/images/lamp.jpg", Description: "USB charging port"},
	}
}

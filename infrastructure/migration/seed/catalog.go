package seed

import "github.com/Hemanth1845/sales-forecasting/internal/domain"

// SampleCatalog devolve o catálogo de exemplo carregado em bancos vazios
func SampleCatalog() []*domain.Product {
	return []*domain.Product{
		// Apple
		phone("Apple", "iPhone 13", 799, 4, 128, 3240, 12, "iOS", "2021-09-24"),
		phone("Apple", "iPhone 14", 899, 6, 128, 3279, 12, "iOS", "2022-09-16"),
		phone("Apple", "iPhone 15", 999, 6, 128, 3349, 48, "iOS", "2023-09-22"),

		// Samsung
		phone("Samsung", "Galaxy S21", 799, 8, 128, 4000, 64, "Android", "2021-01-29"),
		phone("Samsung", "Galaxy S22", 899, 8, 128, 3700, 50, "Android", "2022-02-25"),
		phone("Samsung", "Galaxy S23", 999, 8, 128, 3900, 50, "Android", "2023-02-17"),

		// Google
		phone("Google", "Pixel 6", 599, 8, 128, 4614, 50, "Android", "2021-10-28"),
		phone("Google", "Pixel 7", 699, 8, 128, 4355, 50, "Android", "2022-10-13"),
		phone("Google", "Pixel 8", 799, 8, 128, 4575, 50, "Android", "2023-10-12"),

		// OnePlus
		phone("OnePlus", "9 Pro", 969, 12, 256, 4500, 48, "Android", "2021-03-23"),
		phone("OnePlus", "10 Pro", 899, 12, 256, 5000, 48, "Android", "2022-01-11"),
		phone("OnePlus", "11", 799, 16, 256, 5000, 50, "Android", "2023-02-07"),

		// Xiaomi
		phone("Xiaomi", "Mi 11", 749, 8, 128, 4600, 108, "Android", "2021-01-01"),
		phone("Xiaomi", "12 Pro", 899, 12, 256, 4600, 50, "Android", "2022-03-15"),
		phone("Xiaomi", "13 Pro", 999, 12, 256, 4820, 50, "Android", "2023-02-26"),

		// Oppo
		phone("Oppo", "Find X5 Pro", 1099, 12, 256, 5000, 50, "Android", "2022-02-24"),
		phone("Oppo", "Reno 8 Pro", 599, 12, 256, 4500, 50, "Android", "2022-07-11"),
		phone("Oppo", "Find N2", 1199, 16, 512, 4520, 50, "Android", "2022-12-15"),

		// Vivo
		phone("Vivo", "X90 Pro", 999, 12, 256, 4870, 50, "Android", "2022-11-22"),
		phone("Vivo", "V27 Pro", 449, 8, 128, 4600, 50, "Android", "2023-03-01"),
		phone("Vivo", "X Fold", 1299, 12, 256, 4600, 50, "Android", "2022-04-11"),

		// Redmi
		phone("Redmi", "Note 11 Pro", 299, 6, 128, 5000, 108, "Android", "2022-02-09"),
		phone("Redmi", "K50 Pro", 499, 12, 256, 5000, 108, "Android", "2022-03-17"),
		phone("Redmi", "Note 12 Pro", 329, 8, 128, 5000, 50, "Android", "2022-10-27"),

		// Nothing
		phone("Nothing", "Phone 1", 399, 8, 128, 4500, 50, "Android", "2022-07-12"),
		phone("Nothing", "Phone 2", 499, 12, 256, 4700, 50, "Android", "2023-07-11"),

		// Realme
		phone("Realme", "GT 2 Pro", 599, 12, 256, 5000, 50, "Android", "2022-01-04"),
		phone("Realme", "GT Neo 3", 449, 8, 128, 5000, 50, "Android", "2022-03-22"),
		phone("Realme", "11 Pro", 329, 8, 128, 5000, 108, "Android", "2023-05-15"),

		// Lenovo
		phone("Lenovo", "Legion Phone Duel 2", 799, 16, 256, 5500, 64, "Android", "2021-04-08"),
		phone("Lenovo", "K12 Pro", 199, 4, 64, 5000, 64, "Android", "2020-12-09"),

		// Motorola
		phone("Motorola", "Edge 30 Pro", 699, 12, 256, 4800, 50, "Android", "2022-02-24"),
		phone("Motorola", "Razr 2022", 899, 8, 256, 3500, 50, "Android", "2022-08-11"),

		// Sony
		phone("Sony", "Xperia 1 IV", 1299, 12, 256, 5000, 12, "Android", "2022-06-11"),
		phone("Sony", "Xperia 5 IV", 899, 8, 128, 5000, 12, "Android", "2022-09-22"),

		// Asus
		phone("Asus", "ROG Phone 6", 999, 16, 512, 6000, 50, "Android", "2022-07-05"),
		phone("Asus", "Zenfone 9", 699, 8, 128, 4300, 50, "Android", "2022-07-28"),

		// Nokia
		phone("Nokia", "G60 5G", 299, 4, 64, 4500, 50, "Android", "2022-09-01"),
		phone("Nokia", "X30 5G", 399, 6, 128, 4200, 50, "Android", "2022-09-01"),
	}
}

func phone(brand, model string, price float64, ram, storage, battery, camera int, os, launch string) *domain.Product {
	return &domain.Product{
		Brand:      brand,
		Model:      model,
		Price:      price,
		RAM:        ram,
		Storage:    storage,
		Battery:    battery,
		CameraMP:   camera,
		OS:         os,
		LaunchDate: launch,
	}
}

package catalog

import "shalfa/i18n"

var rooms = []Room{
	{
		ID:          "casal-std",
		Name:        "Suíte Casal Standard",
		Type:        RoomStandard,
		Description: "Intimidade e total autonomia. Ideal para casais, esta suíte oferece cozinha completa (fogão, forno, micro-ondas, panelas e louças) para que você possa preparar suas refeições com conforto.",
		Price:       180,
		Capacity:    2,
		ImageURL:    "https://i.im.ge/2025/11/28/49DzIx.402-1.webp",
		Images: []string{
			"https://i.im.ge/2025/11/28/49DzIx.402-1.webp",
			"https://i.im.ge/2025/11/28/49DkMG.402-2.webp",
			"https://i.im.ge/2025/11/28/49DHxa.402-3.webp",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "1 Cama Casal", "Cozinha Completa", "Fogão e Forno", "Micro-ondas", "Utensílios/Louças", "Frigobar", "TV Smart"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Standard Couple Suite",
				Description: "Intimacy and full autonomy. Ideal for couples, featuring a full kitchen (stove, oven, microwave, cookware, and dishes) to prepare meals comfortably.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "1 Double Bed", "Full Kitchen", "Stove & Oven", "Microwave", "Kitchenware", "Minibar", "Smart TV"},
			},
			i18n.Spanish: {
				Name:        "Suite Matrimonial Estándar",
				Description: "Intimidad y total autonomía. Ideal para parejas, ofrece cocina completa (cocina, horno, microondas, ollas y vajilla) para preparar sus comidas.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "1 Cama Matrimonial", "Cocina Completa", "Cocina y Horno", "Microondas", "Utensilios/Vajilla", "Minibar", "Smart TV"},
			},
		},
	},
	{
		ID:          "triplo-comfort",
		Name:        "Suíte Comfort Tripla",
		Type:        RoomComfort,
		Description: "Versatilidade para pequenas famílias. Configuração inteligente com 1 cama de casal e 1 de solteiro, garantindo descanso após um dia de passeios. Sem cozinha.",
		Price:       220,
		Capacity:    3,
		ImageURL:    "https://i.im.ge/2025/11/28/49IhkW.409-1.webp",
		Images: []string{
			"https://i.im.ge/2025/11/28/49IhkW.409-1.webp",
			"https://i.im.ge/2025/11/28/49I0F0.409-2.webp",
			"https://i.im.ge/2025/11/28/49I5jT.409-3.jpeg",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "1 Cama Casal", "1 Cama Solteiro", "Frigobar"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Comfort Triple Suite",
				Description: "Versatility for small families. Smart configuration with 1 double bed and 1 single bed. No kitchen.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "1 Double Bed", "1 Single Bed", "Minibar"},
			},
			i18n.Spanish: {
				Name:        "Suite Confort Triple",
				Description: "Versatilidad para familias pequeñas. Configuración inteligente con 1 cama matrimonial y 1 individual. Sin cocina.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "1 Cama Matrimonial", "1 Cama Individual", "Minibar"},
			},
		},
	},
	{
		ID:          "triplo-twin",
		Name:        "Suíte Twin Tripla",
		Type:        RoomComfort,
		Description: "Perfeito para grupos de amigos ou colegas de trabalho. Três camas de solteiro individuais oferecem conforto e independência para todos os hóspedes.",
		Price:       220,
		Capacity:    3,
		ImageURL:    "https://i.im.ge/2025/11/28/49IN4a.414-1.webp",
		Images: []string{
			"https://i.im.ge/2025/11/28/49IN4a.414-1.webp",
			"https://i.im.ge/2025/11/28/49I63x.414-2.webp",
			"https://i.im.ge/2025/11/28/49ItqJ.Captura-de-tela-2025-11-28-095616.png",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "3 Camas Solteiro", "Frigobar", "TV Smart"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Twin Triple Suite",
				Description: "Perfect for groups of friends. Three individual single beds offer comfort and independence.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "3 Single Beds", "Minibar", "Smart TV"},
			},
			i18n.Spanish: {
				Name:        "Suite Twin Triple",
				Description: "Perfecto para grupos de amigos. Tres camas individuales ofrecen confort e independencia.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "3 Camas Individuales", "Minibar", "Smart TV"},
			},
		},
	},
	{
		ID:          "apto-royal",
		Name:        "Apartamento Royal (2 Quartos)",
		Type:        RoomApartment,
		Description: "Privacidade absoluta. Unidade exclusiva com 2 quartos separados, ambos com cama de casal. A escolha ideal para casais viajando juntos ou famílias que valorizam o espaço individual.",
		Price:       350,
		Capacity:    4,
		ImageURL:    "https://i.im.ge/2025/11/28/49LoZT.403-1-1.jpeg",
		Images: []string{
			"https://i.im.ge/2025/11/28/49LoZT.403-1-1.jpeg",
			"https://i.im.ge/2025/11/28/49LTm0.403-2.jpeg",
			"https://i.im.ge/2025/11/28/49Lloc.403-3.jpeg",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "2 Quartos Separados", "2 Camas Casal", "Frigobar"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Royal Apartment (2 Bedrooms)",
				Description: "Absolute privacy. Exclusive unit with 2 separate bedrooms, both with double beds.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "2 Separate Bedrooms", "2 Double Beds", "Minibar"},
			},
			i18n.Spanish: {
				Name:        "Apartamento Royal (2 Habitaciones)",
				Description: "Privacidad absoluta. Unidad exclusiva con 2 habitaciones separadas, ambas con cama matrimonial.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "2 Habitaciones Separadas", "2 Camas Matrimoniales", "Minibar"},
			},
		},
	},
	{
		ID:          "estudio-gourmet",
		Name:        "Estúdio Quádruplo",
		Type:        RoomStudio,
		Description: "Independência e espaço. Acomoda 4 pessoas com cozinha completa equipada com fogão, forno, micro-ondas e utensílios, perfeita para preparar refeições completas.",
		Price:       280,
		Capacity:    4,
		ImageURL:    "https://i.im.ge/2025/11/28/49L2yJ.415-1.webp",
		Images: []string{
			"https://i.im.ge/2025/11/28/49L2yJ.415-1.webp",
			"https://i.im.ge/2025/11/28/49L1aa.415-2.webp",
			"https://i.im.ge/2025/11/28/49LSHy.415-3.jpeg",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "4 Camas Solteiro", "Cozinha Completa", "Fogão e Forno", "Micro-ondas", "Utensílios/Louças", "Frigobar"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Gourmet Quad Studio",
				Description: "Independence and space. Accommodates 4 people featuring a full kitchen with stove, oven, microwave and cookware.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "4 Single Beds", "Full Kitchen", "Stove & Oven", "Microwave", "Kitchenware", "Minibar"},
			},
			i18n.Spanish: {
				Name:        "Estudio Gourmet Cuádruple",
				Description: "Independencia y espacio. Acomoda 4 personas con cocina completa equipada con cocina, horno, microondas y utensilios.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "4 Camas Individuales", "Cocina Completa", "Cocina y Horno", "Microondas", "Utensilios", "Minibar"},
			},
		},
	},
	{
		ID:          "familia-premium",
		Name:        "Estúdio Família Premium",
		Type:        RoomStudio,
		Description: "Nossa acomodação mais completa. 1 Cama de casal e 2 de solteiro. A cozinha é completa: fogão, forno, micro-ondas, panelas, pratos e talheres à sua disposição.",
		Price:       300,
		Capacity:    4,
		ImageURL:    "https://i.im.ge/2025/11/28/49Lq1S.416-1.webp",
		Images: []string{
			"https://i.im.ge/2025/11/28/49Lq1S.416-1.webp",
			"https://i.im.ge/2025/11/28/49LaZ6.416-2.jpeg",
			"https://i.im.ge/2025/11/28/49Lsmz.416-3.jpeg",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "1 Cama Casal", "2 Camas Solteiro", "Cozinha Completa", "Fogão e Forno", "Micro-ondas", "Utensílios/Louças"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Family Premium Studio",
				Description: "Our most complete accommodation. 1 Double and 2 Singles. The kitchen is full: stove, oven, microwave, pans, dishes and cutlery.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "1 Double Bed", "2 Single Beds", "Full Kitchen", "Stove & Oven", "Microwave", "Kitchenware"},
			},
			i18n.Spanish: {
				Name:        "Estudio Familia Premium",
				Description: "Nuestra opción más completa. 1 cama matrimonial y 2 individuales. La cocina es completa: cocina, horno, microondas, ollas y vajilla.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "1 Cama Matrimonial", "2 Camas Individuales", "Cocina Completa", "Cocina y Horno", "Microondas", "Utensilios"},
			},
		},
	},
	{
		ID:          "apartamento-grand-family",
		Name:        "Apartamento Grand Family (3 Quartos)",
		Type:        RoomApartment,
		Description: "Conforto para grandes famílias. São 3 quartos, todos com cama de casal (sendo 1 suíte), além de sala de estar ampla, mesa de jantar, cozinha completa e lavanderia privativa.",
		Price:       580,
		Capacity:    6,
		ImageURL:    "https://i.im.ge/2025/12/03/4EBDS0.302-1.webp",
		Images: []string{
			"https://i.im.ge/2025/12/03/4EBDS0.302-1.webp",
			"https://i.im.ge/2025/12/03/4EBavW.302-2.webp",
			"https://i.im.ge/2025/12/03/4EBINT.302-3.webp",
			"https://i.im.ge/2025/12/03/4EBsEr.302-4.webp",
			"https://i.im.ge/2025/12/03/4EBLVc.302-5.webp",
			"https://i.im.ge/2025/12/03/4EBhrL.302-6.jpeg",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "3 Quartos", "3 Camas Casal", "Cozinha Completa", "Lavanderia", "2 Banheiros + Lavabo", "Sala de Estar", "Mesa de Jantar"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Grand Family Apartment (3 Bedrooms)",
				Description: "Comfort for large families. 3 bedrooms, all with double beds (1 en-suite), plus a spacious living room, dining table, full kitchen, and private laundry.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "3 Bedrooms", "3 Double Beds", "Full Kitchen", "Laundry Room", "2 Bathrooms + Half Bath", "Living Room", "Dining Table"},
			},
			i18n.Spanish: {
				Name:        "Apartamento Grand Family (3 Habitaciones)",
				Description: "Confort para grandes familias. 3 habitaciones con cama matrimonial (1 en suite), amplia sala de estar, comedor, cocina completa y lavandería.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "3 Habitaciones", "3 Camas Matrimoniales", "Cocina Completa", "Lavandería", "2 Baños + Aseo", "Sala de Estar", "Mesa de Comedor"},
			},
		},
	},
	{
		ID:          "apartamento-imperial",
		Name:        "Apartamento Imperial",
		Type:        RoomApartment,
		Description: "Exclusividade total em 200m². Configuração de 4 quartos: 1 Suíte Casal, 1 Suíte Solteiro, 1 Quarto Casal e 1 Quarto com duas camas solteiro. Conta com banheiro social, lavabo, sala de estar, cozinha completa e lavanderia.",
		Price:       750,
		Capacity:    7,
		ImageURL:    "https://i.im.ge/2025/12/03/4xMQDa.204-1.jpeg",
		Images: []string{
			"https://i.im.ge/2025/12/03/4xMQDa.204-1.jpeg",
			"https://i.im.ge/2025/12/03/4EeJVT.204-2.webp",
			"https://i.im.ge/2025/12/03/4Eezvr.204-3.webp",
			"https://i.im.ge/2025/12/03/4Eep2W.204-4.webp",
			"https://i.im.ge/2025/12/03/4EeB0L.204-5.webp",
			"https://i.im.ge/2025/12/03/4EeGcG.204-6.webp",
			"https://i.im.ge/2025/12/03/4Eev60.204-7.webp",
		},
		Amenities: []string{"Wi-Fi Grátis", "Ar Condicionado", "4 Quartos (2 Suítes)", "2 Camas Casal", "3 Camas Solteiro", "Cozinha Completa", "Lavanderia", "Banheiro Social + Lavabo", "Sala de Estar", "Mesa de Jantar"},
		Translations: map[i18n.Language]RoomContent{
			i18n.English: {
				Name:        "Imperial Apartment (200m²)",
				Description: "Total exclusivity in 200m². Features 4 bedrooms: 1 Double Suite, 1 Single Suite, 1 Double Room, and 1 Twin Room. Includes shared bath, half bath, living room, full kitchen, and laundry.",
				Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "4 Bedrooms (2 Suites)", "2 Double Beds", "3 Single Beds", "Full Kitchen", "Laundry Room", "Bath + Half Bath", "Living Room", "Dining Table"},
			},
			i18n.Spanish: {
				Name:        "Apartamento Imperial (200m²)",
				Description: "Exclusividad total en 200m². Cuenta con 4 habitaciones: 1 Suite Matrimonial, 1 Suite Individual, 1 Habitación Matrimonial y 1 Twin. Incluye baño social, aseo, sala, cocina completa y lavandería.",
				Amenities:   []string{"Wi-Fi Gratis", "Aire Acondicionado", "4 Habitaciones (2 Suites)", "2 Camas Matrimoniales", "3 Camas Individuales", "Cocina Completa", "Lavandería", "Baño + Aseo", "Sala de Estar", "Mesa de Comedor"},
			},
		},
	},
}

package catalog

import "shalfa/i18n"

var heroSlides = []HeroSlide{
	{
		ID:       1,
		Image:    "https://www.destino.foz.br/wp-content/uploads/2024/03/por-do-sol-nas-cataratas8.jpg",
		Alt:      "Cataratas do Iguaçu",
		Title:    "Maravilha Natural",
		Subtitle: "Sinta a energia inigualável das águas",
		Translations: map[i18n.Language]SlideContent{
			i18n.English: {Title: "Natural Wonder", Subtitle: "Feel the unmatched energy of the waters"},
			i18n.Spanish: {Title: "Maravilla Natural", Subtitle: "Sienta la energía inigualable de las aguas"},
		},
	},
	{
		ID:       2,
		Image:    "https://drive.google.com/file/d/1xZG-Yp1PgQlsJikEnnMJn9sXgtjyvxdL/view?usp=sharing",
		Alt:      "Residencial Shalfa",
		Title:    "Residencial Shalfa",
		Subtitle: "Seu refúgio de conforto na Vila Portes",
		Translations: map[i18n.Language]SlideContent{
			i18n.English: {Title: "Residencial Shalfa", Subtitle: "Your comfort refuge in Vila Portes"},
			i18n.Spanish: {Title: "Residencial Shalfa", Subtitle: "Su refugio de confort en Vila Portes"},
		},
	},
	{
		ID:       3,
		Image:    "https://statics.forbes.com.py/2025/02/67bab38de29d7.jpg",
		Alt:      "Compras no Paraguai",
		Title:    "Compras no Paraguai",
		Subtitle: "As melhores marcas a um passo de você",
		Translations: map[i18n.Language]SlideContent{
			i18n.English: {Title: "Shopping in Paraguay", Subtitle: "The best brands just a step away"},
			i18n.Spanish: {Title: "Compras en Paraguay", Subtitle: "Las mejores marcas a un paso de usted"},
		},
	},
}

var attractions = []Attraction{
	{
		ID:          1,
		Name:        "Cataratas do Iguaçu",
		Distance:    "20 km do Residencial Shalfa",
		Image:       "https://i0.wp.com/thetravelpub.com/wp-content/uploads/2023/12/paraguay.jpg?fit=1280,879&ssl=1",
		VideoURL:    "https://cdn.pixabay.com/video/2025/02/23/260535_large.mp4",
		Story:       "A Lenda de Naipi e Tarobá",
		Description: "Patrimônio Natural da Humanidade pela UNESCO, as Cataratas formam o maior sistema de quedas d'água do mundo. O destaque é a 'Garganta do Diabo', um abismo em forma de U com mais de 80 metros de altura.",
		Coordinates: &Coordinates{Lat: -25.695272, Lng: -54.436666},
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {
				Name:        "Iguazu Falls",
				Description: `A UNESCO World Heritage Site, the Falls form the largest waterfall system in the world. The highlight is the "Devil's Throat", a U-shaped abyss over 80 meters high.`,
				Story:       "The Legend of Naipi and Tarobá",
			},
			i18n.Spanish: {
				Name:        "Cataratas del Iguazú",
				Description: `Patrimonio Natural de la Humanidad por la UNESCO, las Cataratas forman el sistema de caídas de agua más grande del mundo. Lo más destacado es la "Garganta del Diablo", un abismo en forma de U de más de 80 metros de altura.`,
				Story:       "La Leyenda de Naipi y Tarobá",
			},
		},
	},
	{
		ID:          2,
		Name:        "Parque das Aves",
		Distance:    "19 km do Residencial Shalfa",
		Image:       "https://upload.wikimedia.org/wikipedia/commons/9/99/Arara_vermelha_-_Parque_das_aves_-_Foz_do_Iguacu_-_Brasil_%2824195243491%29.jpg",
		VideoURL:    "https://cdn.pixabay.com/video/2022/04/04/112873-696348992_large.mp4",
		Story:       "O Resgate da Mata Atlântica",
		Description: "Muito mais que um zoológico, é um centro de conservação internacional. Caminhe dentro de viveiros gigantes onde tucanos e araras voam livremente sobre sua cabeça.",
		Coordinates: &Coordinates{Lat: -25.6166, Lng: -54.4827},
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {
				Name:        "Bird Park",
				Description: "Much more than a zoo, it is an international conservation center. Walk inside giant aviaries where toucans and macaws fly freely over your head.",
				Story:       "Atlantic Forest Rescue",
			},
			i18n.Spanish: {
				Name:        "Parque de las Aves",
				Description: "Mucho más que un zoológico, es un centro de conservación internacional. Camine dentro de viveros gigantes donde tucanes y guacamayos vuelan libremente sobre su cabeza.",
				Story:       "El Rescate de la Mata Atlántica",
			},
		},
	},
	{
		ID:          3,
		Name:        "Usina de Itaipu",
		Distance:    "9 km do Residencial Shalfa",
		Image:       "https://turismoitaipu.com.br/wp-content/uploads/2024/08/usina-de-itaipu-foz-do-iguacu-curiosidades-scaled.jpg",
		Story:       "Concreto e Aço",
		Description: "Uma obra faraônica que mudou a geografia da América do Sul. A estrutura possui ferro suficiente para construir 380 Torres Eiffel.",
		Coordinates: &Coordinates{Lat: -25.4131, Lng: -54.5883},
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {
				Name:        "Itaipu Dam",
				Description: "A pharaonic work that changed the geography of South America. The structure has enough iron to build 380 Eiffel Towers.",
				Story:       "Concrete and Steel",
			},
			i18n.Spanish: {
				Name:        "Represa de Itaipú",
				Description: "Una obra faraónica que cambió la geografía de América del Sur. La estructura tiene suficiente hierro para construir 380 Torres Eiffel.",
				Story:       "Concreto y Acero",
			},
		},
	},
	{
		ID:          4,
		Name:        "Marco das 3 Fronteiras",
		Distance:    "10 km do Residencial Shalfa",
		Image:       "https://www.hoteldelreyfoz.com.br/wp-content/uploads/2022/04/imgns-blog-TRESFRONTEIRAS1.jpg",
		Story:       "O Encontro de Nações",
		Description: "Onde o Rio Iguaçu encontra o Rio Paraná, três países se olham. O local foi revitalizado para honrar as missões jesuíticas com arquitetura colonial.",
		Coordinates: &Coordinates{Lat: -25.5995, Lng: -54.6000},
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {
				Name:        "Triple Frontier Landmark",
				Description: "Where the Iguazu River meets the Paraná River, three countries look at each other. The site was revitalized to honor Jesuit missions with colonial architecture.",
				Story:       "Meeting of Nations",
			},
			i18n.Spanish: {
				Name:        "Hito de las 3 Fronteras",
				Description: "Donde el río Iguazú se encuentra con el río Paraná, tres países se miran. El lugar fue revitalizado para honrar las misiones jesuíticas con arquitectura colonial.",
				Story:       "El Encuentro de Naciones",
			},
		},
	},
}

var shoppingSpots = []ShoppingSpot{
	{
		ID:          1,
		Name:        "Monalisa",
		Description: "Um ícone de sofisticação com mais de 50 anos de história. Explore andares dedicados à alta costura, joalheria internacional e uma adega climatizada premiada.",
		Image:       "https://dynamic-media-cdn.tripadvisor.com/media/photo-o/21/f8/c5/7f/tienda-monalisa.jpg?w=1200&h=-1&s=1",
		Tags:        []string{"Luxo", "Haute Couture", "Vinhos"},
		URL:         "https://www.google.com/maps/search/?api=1&query=Monalisa+Ciudad+del+Este",
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {Name: "Monalisa", Description: "A sophisticated icon with over 50 years of history. Explore floors dedicated to haute couture, international jewelry, and an award-winning wine cellar."},
			i18n.Spanish: {Name: "Monalisa", Description: "Un icono de sofisticación con más de 50 años de historia. Explore pisos dedicados a la alta costura, joyería internacional y una bodega galardonada."},
		},
	},
	{
		ID:          2,
		Name:        "Cellshop Importados",
		Description: "O epicentro da tecnologia. Desde os últimos lançamentos da Apple até equipamentos de som profissionais, é a referência absoluta em eletrônicos originais.",
		Image:       "https://www.h2foz.com.br/wp-content/uploads/2022/09/d3ffa164-261-cellshop.jpg",
		Tags:        []string{"Tech", "Apple Auth.", "Bebidas"},
		URL:         "https://www.google.com/maps/search/?api=1&query=Cellshop+Importados+Ciudad+del+Este",
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {Name: "Cellshop Importados", Description: "The epicenter of technology. From the latest Apple releases to professional sound equipment, it is the absolute reference in original electronics."},
			i18n.Spanish: {Name: "Cellshop Importados", Description: "El epicentro de la tecnología. Desde los últimos lanzamientos de Apple hasta equipos de sonido profesionales, es la referencia absoluta en electrónica original."},
		},
	},
	{
		ID:          3,
		Name:        "Shopping China/Pris",
		Description: "Eleita a melhor loja de importados do mundo. Um complexo gigantesco que oferece de chocolates suíços a cosméticos de luxo em um ambiente impecável.",
		Image:       "https://i.ytimg.com/vi/a3eWj0-f9-o/maxresdefault.jpg",
		Tags:        []string{"Departamento", "Cosméticos", "Gourmet"},
		URL:         "https://www.google.com/maps/search/?api=1&query=Shopping+China+Importados+Ciudad+del+Este",
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {Name: "Shopping China/Pris", Description: "Voted the best import store in the world. A gigantic complex offering from Swiss chocolates to luxury cosmetics in an impeccable environment."},
			i18n.Spanish: {Name: "Shopping China/Pris", Description: "Elegida la mejor tienda de importados del mundo. Un complejo gigantesco que ofrece desde chocolates suizos hasta cosméticos de lujo en un ambiente impecable."},
		},
	},
	{
		ID:          4,
		Name:        "Nissei",
		Description: "Especialistas em imagem e som. Revendedora autorizada das maiores marcas fotográficas, oferecendo garantia e atendimento técnico especializado.",
		Image:       "https://nissei.com/media/wysiwyg/geral/quienes-somos/quienes-somos-Nissei-CDE-Tienda.jpg",
		Tags:        []string{"Fotografia", "Drones", "Gadgets"},
		URL:         "https://www.google.com/maps/search/?api=1&query=Nissei+Ciudad+del+Este",
		Translations: map[i18n.Language]PlaceContent{
			i18n.English: {Name: "Nissei", Description: "Image and sound specialists. Authorized dealer of major camera brands, offering warranty and specialized technical service."},
			i18n.Spanish: {Name: "Nissei", Description: "Especialistas en imagen y sonido. Distribuidor autorizado de las principales marcas de fotografía, ofreciendo garantía y servicio técnico especializado."},
		},
	},
}

var shoppingTips = []ShoppingTip{
	{
		Title: "Cota de Isenção",
		Text:  "US$ 500,00 por pessoa via terrestre. Declaração necessária se exceder.",
		Icon:  "CreditCard",
		Translations: map[i18n.Language]TipContent{
			i18n.English: {Title: "Exemption Quota", Text: "US$ 500.00 per person via land. Declaration required if exceeded."},
			i18n.Spanish: {Title: "Cuota de Exención", Text: "US$ 500.00 por persona vía terrestre. Declaración necesaria si se excede."},
		},
	},
	{
		Title: "Documentação",
		Text:  "Obrigatório RG (menos de 10 anos) ou Passaporte. CNH não é aceita para entrada.",
		Icon:  "FileText",
		Translations: map[i18n.Language]TipContent{
			i18n.English: {Title: "Documentation", Text: "Mandatory ID (less than 10 years) or Passport. Driver's license is not accepted for entry."},
			i18n.Spanish: {Title: "Documentación", Text: "Obligatorio RG (menos de 10 años) o Pasaporte. La licencia de conducir no se acepta para el ingreso."},
		},
	},
	{
		Title: "Horários",
		Text:  "A maioria das lojas funciona das 07h às 16h (Horário BR). Evite ir aos domingos.",
		Icon:  "Clock",
		Translations: map[i18n.Language]TipContent{
			i18n.English: {Title: "Opening Hours", Text: "Most stores are open from 07:00 to 16:00 (BR Time). Avoid going on Sundays."},
			i18n.Spanish: {Title: "Horarios", Text: "La mayoría de las tiendas abren de 07:00 a 16:00 (Hora BR). Evite ir los domingos."},
		},
	},
	{
		Title: "Proximidade",
		Text:  "O Shalfa está na Vila Portes, a poucos minutos da Ponte da Amizade.",
		Icon:  "MapPin",
		Translations: map[i18n.Language]TipContent{
			i18n.English: {Title: "Proximity", Text: "Shalfa is in Vila Portes, just minutes from the Friendship Bridge."},
			i18n.Spanish: {Title: "Proximidad", Text: "Shalfa está en Vila Portes, a pocos minutos del Puente de la Amistad."},
		},
	},
}

package i18n

// UI string tables, keyed by dotted path.
var translations = map[Language]map[string]string{
	Portuguese: {
		"nav.rooms":       "Acomodações",
		"nav.tourism":     "Turismo",
		"nav.shopping":    "Compras",
		"nav.location":    "Localização",
		"nav.book":        "Reservar",
		"nav.book_mobile": "Reservar",

		"hero.discover": "Descubra",
		"hero.scroll":   "Deslize",

		"home_intro.label": "O Refúgio",
		"home_intro.title": "Residencial Shalfa",
		"home_intro.desc":  "Após um dia de aventuras e descobertas, seu santuário de tranquilidade o aguarda. Localizado estrategicamente na Vila Portes, unimos o acesso privilegiado ao conforto residencial.",

		"location_section.label":           "Localização",
		"location_section.title":           "Vila Portes",
		"location_section.desc":            "O epicentro comercial de Foz do Iguaçu. Estar aqui significa ter a Ponte da Amizade como vizinha e o acesso facilitado a todos os pontos turísticos.",
		"location_section.address_label":   "Endereço",
		"location_section.distance_bridge": "da Ponte da Amizade",
		"location_section.distance_dam":    "de Itaipu",

		"features.wifi.name":      "Wi-Fi Premium",
		"features.wifi.desc":      "Conexão de alta velocidade.",
		"features.ac.name":        "Climatização",
		"features.ac.desc":        "Ambientes climatizados.",
		"features.parking.name":   "Estacionamento",
		"features.parking.desc":   "Segurança para seu veículo.",
		"features.kitchen.name":   "Cozinha Completa",
		"features.kitchen.desc":   "Totalmente equipada em unidades selecionadas.",
		"features.breakfast.name": "Café da Manhã",
		"features.breakfast.desc": "Não servimos no local, mas há ótimas padarias a 50m.",

		"shopping.badge":              "Zona Franca",
		"shopping.title":              "Ciudad del Este",
		"shopping.subtitle":           "Tecnologia de ponta e marcas de luxo na sua porta.",
		"shopping.visit":              "Visitar",
		"shopping.map":                "Ver Mapa",
		"shopping.search_badge":       "Economia",
		"shopping.search_title":       "Pesquisa de Preços",
		"shopping.search_desc":        "Consulte disponibilidade e preços em tempo real no ComprasParaguai.",
		"shopping.search_placeholder": "Ex: iPhone 15, Perfume...",
		"shopping.search_btn":         "Buscar",
		"shopping.about_title":        "Sobre Ciudad del Este",
		"shopping.history_title":      "O Pulmão Comercial da América",
		"shopping.history_text":       "Fundada em 1957, Ciudad del Este transformou-se de um pequeno posto de fronteira na terceira maior zona franca do mundo. É um fenômeno onde culturas se encontram e negócios globais acontecem a cada segundo.",
		"shopping.curiosity_1":        "Movimenta bilhões de dólares anualmente, superando o PIB de muitos países inteiros.",
		"shopping.curiosity_2":        "É o lar de mais de 70 etnias, com destaque para as grandes comunidades libanesa, chinesa e coreana.",

		"rooms.title":          "Suítes & Acomodações",
		"rooms.subtitle":       "Conheça nossas opções projetadas para casais, famílias e grupos. Conforto, praticidade e o melhor custo-benefício.",
		"rooms.cta":            "Ver Todas as Suítes",
		"rooms.details":        "Detalhes",
		"rooms.from":           "A partir de",
		"rooms.select":         "Selecionar esta Suíte",
		"rooms.capacity":       "Pessoas",
		"rooms.kitchen":        "Cozinha",
		"rooms.amenities_title": "O que este quarto oferece",
		"rooms.daily_rate":     "Valor da diária",

		"booking_page.brand":         "Residencial Shalfa",
		"booking_page.title":         "Nossas Suítes",
		"booking_page.subtitle":      "Conforto residencial com a praticidade que você precisa. Escolha o espaço ideal para sua estadia em Foz do Iguaçu.",
		"booking_page.form_title":    "Finalizar Reserva",
		"booking_page.form_subtitle": "Confirme os detalhes da sua estadia abaixo.",

		"booking.title":            "Finalizar Reserva",
		"booking.subtitle":         "Confirme os detalhes da sua estadia abaixo.",
		"booking.accommodation":    "Acomodação",
		"booking.guests_label":     "Quantas pessoas?",
		"booking.kitchen_label":    "Cozinha?",
		"booking.kitchen_any":      "Indiferente",
		"booking.kitchen_yes":      "Sim",
		"booking.kitchen_no":       "Não",
		"booking.choose_suite":     "Escolha sua Suíte:",
		"booking.no_rooms":         "Nenhuma suíte encontrada com estes filtros.",
		"booking.your_data":        "Seus Dados",
		"booking.name_label":       "Nome Completo",
		"booking.name_placeholder": "Como no documento",
		"booking.cpf_label":        "CPF",
		"booking.cpf_placeholder":  "000.000.000-00",
		"booking.phone_label":      "WhatsApp",
		"booking.checkin":          "Data de Entrada",
		"booking.checkout":         "Data de Saída",
		"booking.summary_suite":    "Suíte Selecionada",
		"booking.duration":         "Duração",
		"booking.night":            "noite",
		"booking.nights":           "noites",
		"booking.total":            "Total Estimado",
		"booking.confirm":          "Ir para Pagamento",
		"booking.whatsapp_note":    "Ao clicar, você será redirecionado para nosso motor de reservas seguro da Stays.net para concluir o pagamento.",

		"booking.err_required":      "Obrigatório",
		"booking.err_name_invalid":  "Nome inválido",
		"booking.err_phone_invalid": "Telefone inválido",
		"booking.err_date_invalid":  "Data inválida",

		"footer.brand_sub": "Residencial",
		"footer.desc":      "Excelência em hospitalidade no Residencial Shalfa. Conforto e sofisticação em cada detalhe.",
		"footer.contact":   "Contato",
		"footer.social":    "Social",
		"footer.rights":    "Todos os direitos reservados.",
	},
	English: {
		"nav.rooms":       "Accommodations",
		"nav.tourism":     "Tourism",
		"nav.shopping":    "Shopping",
		"nav.location":    "Location",
		"nav.book":        "Book Now",
		"nav.book_mobile": "Book",

		"hero.discover": "Discover",
		"hero.scroll":   "Scroll",

		"home_intro.label": "The Refuge",
		"home_intro.title": "Residencial Shalfa",
		"home_intro.desc":  "After a day of adventure and discovery, your sanctuary of tranquility awaits. Strategically located in Vila Portes, we combine privileged access with residential comfort.",

		"location_section.label":           "Location",
		"location_section.title":           "Vila Portes",
		"location_section.desc":            "The commercial epicenter of Foz do Iguaçu. Being here means having the Friendship Bridge as a neighbor and easy access to all tourist spots.",
		"location_section.address_label":   "Address",
		"location_section.distance_bridge": "from Friendship Bridge",
		"location_section.distance_dam":    "from Itaipu Dam",

		"features.wifi.name":      "Premium Wi-Fi",
		"features.wifi.desc":      "High-speed connection.",
		"features.ac.name":        "Climate Control",
		"features.ac.desc":        "Air conditioned environments.",
		"features.parking.name":   "Parking",
		"features.parking.desc":   "Security for your vehicle.",
		"features.kitchen.name":   "Full Kitchen",
		"features.kitchen.desc":   "Fully equipped in selected units.",
		"features.breakfast.name": "Breakfast",
		"features.breakfast.desc": "Not served on-site, but excellent bakeries are 50m away.",

		"shopping.badge":              "Free Zone",
		"shopping.title":              "Ciudad del Este",
		"shopping.subtitle":           "Cutting-edge technology and luxury brands at your doorstep.",
		"shopping.visit":              "Visit",
		"shopping.map":                "View Map",
		"shopping.search_badge":       "Savings",
		"shopping.search_title":       "Price Search",
		"shopping.search_desc":        "Check real-time availability and prices on ComprasParaguai.",
		"shopping.search_placeholder": "Ex: iPhone 15, Perfume...",
		"shopping.search_btn":         "Search",
		"shopping.about_title":        "About Ciudad del Este",
		"shopping.history_title":      "The Commercial Lung of America",
		"shopping.history_text":       "Founded in 1957, Ciudad del Este transformed from a small border post into the third largest free zone in the world. It is a phenomenon where cultures meet and global business happens every second.",
		"shopping.curiosity_1":        "It moves billions of dollars annually, surpassing the GDP of many entire countries.",
		"shopping.curiosity_2":        "Home to over 70 ethnicities, with notable Lebanese, Chinese, and Korean communities.",

		"rooms.title":          "Suites & Rooms",
		"rooms.subtitle":       "Discover options designed for couples, families, and groups. Comfort, practicality, and the best value.",
		"rooms.cta":            "View All Suites",
		"rooms.details":        "Details",
		"rooms.from":           "From",
		"rooms.select":         "Select this Suite",
		"rooms.capacity":       "Guests",
		"rooms.kitchen":        "Kitchen",
		"rooms.amenities_title": "Room Amenities",
		"rooms.daily_rate":     "Daily Rate",

		"booking_page.brand":         "Residencial Shalfa",
		"booking_page.title":         "Our Suites",
		"booking_page.subtitle":      "Residential comfort with the practicality you need. Choose the ideal space for your stay in Foz do Iguaçu.",
		"booking_page.form_title":    "Complete Reservation",
		"booking_page.form_subtitle": "Confirm your stay details below.",

		"booking.title":            "Complete Reservation",
		"booking.subtitle":         "Confirm your stay details below.",
		"booking.accommodation":    "Accommodation",
		"booking.guests_label":     "How many guests?",
		"booking.kitchen_label":    "Kitchen?",
		"booking.kitchen_any":      "Any",
		"booking.kitchen_yes":      "Yes",
		"booking.kitchen_no":       "No",
		"booking.choose_suite":     "Choose your Suite:",
		"booking.no_rooms":         "No suites found with these filters.",
		"booking.your_data":        "Your Details",
		"booking.name_label":       "Full Name",
		"booking.name_placeholder": "As on ID",
		"booking.cpf_label":        "Tax ID / Passport",
		"booking.cpf_placeholder":  "ID Number",
		"booking.phone_label":      "WhatsApp / Phone",
		"booking.checkin":          "Check-in Date",
		"booking.checkout":         "Check-out Date",
		"booking.summary_suite":    "Selected Suite",
		"booking.duration":         "Duration",
		"booking.night":            "night",
		"booking.nights":           "nights",
		"booking.total":            "Estimated Total",
		"booking.confirm":          "Go to Payment",
		"booking.whatsapp_note":    "By clicking, you will be redirected to our secure Stays.net booking engine to complete payment.",

		"booking.err_required":      "Required",
		"booking.err_name_invalid":  "Invalid name",
		"booking.err_phone_invalid": "Invalid phone",
		"booking.err_date_invalid":  "Invalid date",

		"footer.brand_sub": "Residential",
		"footer.desc":      "Excellence in hospitality at Residencial Shalfa. Comfort and sophistication in every detail.",
		"footer.contact":   "Contact",
		"footer.social":    "Social",
		"footer.rights":    "All rights reserved.",
	},
	Spanish: {
		"nav.rooms":       "Alojamiento",
		"nav.tourism":     "Turismo",
		"nav.shopping":    "Compras",
		"nav.location":    "Ubicación",
		"nav.book":        "Reservar",
		"nav.book_mobile": "Reservar",

		"hero.discover": "Descubra",
		"hero.scroll":   "Deslizar",

		"home_intro.label": "El Refugio",
		"home_intro.title": "Residencial Shalfa",
		"home_intro.desc":  "Después de un día de aventuras, su santuario de tranquilidad le espera. Ubicado estratégicamente en Vila Portes, unimos acceso privilegiado con confort residencial.",

		"location_section.label":           "Ubicación",
		"location_section.title":           "Vila Portes",
		"location_section.desc":            "El epicentro comercial de Foz do Iguaçu. Estar aquí significa tener el Puente de la Amistad como vecino y fácil acceso a todos los puntos turísticos.",
		"location_section.address_label":   "Dirección",
		"location_section.distance_bridge": "del Puente de la Amistad",
		"location_section.distance_dam":    "de Itaipú",

		"features.wifi.name":      "Wi-Fi Premium",
		"features.wifi.desc":      "Conexión de alta velocidad.",
		"features.ac.name":        "Climatización",
		"features.ac.desc":        "Ambientes climatizados.",
		"features.parking.name":   "Estacionamiento",
		"features.parking.desc":   "Seguridad para su vehículo.",
		"features.kitchen.name":   "Cocina Completa",
		"features.kitchen.desc":   "Totalmente equipada en unidades seleccionadas.",
		"features.breakfast.name": "Desayuno",
		"features.breakfast.desc": "No servimos en el local, pero hay excelentes panaderías a 50m.",

		"shopping.badge":              "Zona Franca",
		"shopping.title":              "Ciudad del Este",
		"shopping.subtitle":           "Tecnología de punta y marcas de lujo en su puerta.",
		"shopping.visit":              "Visitar",
		"shopping.map":                "Ver Mapa",
		"shopping.search_badge":       "Economía",
		"shopping.search_title":       "Búsqueda de Precios",
		"shopping.search_desc":        "Consulte disponibilidad y precios en tiempo real en ComprasParaguai.",
		"shopping.search_placeholder": "Ej: iPhone 15, Perfume...",
		"shopping.search_btn":         "Buscar",
		"shopping.about_title":        "Sobre Ciudad del Este",
		"shopping.history_title":      "El Pulmón Comercial de América",
		"shopping.history_text":       "Fundada en 1957, Ciudad del Este se transformó de un pequeño puesto fronterizo en la tercera zona franca más grande del mundo. Es un fenómeno donde culturas se encuentran y negocios globales ocurren cada segundo.",
		"shopping.curiosity_1":        "Mueve miles de millones de dólares anualmente, superando el PIB de muchos países enteros.",
		"shopping.curiosity_2":        "Es el hogar de más de 70 etnias, con destaque para las grandes comunidades libanesa, china y coreana.",

		"rooms.title":          "Suites y Habitaciones",
		"rooms.subtitle":       "Descubra opciones diseñadas para parejas, familias y grupos. Confort, practicidad y la mejor relación calidad-precio.",
		"rooms.cta":            "Ver Todas las Suites",
		"rooms.details":        "Detalles",
		"rooms.from":           "Desde",
		"rooms.select":         "Seleccionar esta Suite",
		"rooms.capacity":       "Personas",
		"rooms.kitchen":        "Cocina",
		"rooms.amenities_title": "Comodidades",
		"rooms.daily_rate":     "Tarifa Diaria",

		"booking_page.brand":         "Residencial Shalfa",
		"booking_page.title":         "Nuestras Suites",
		"booking_page.subtitle":      "Confort residencial con la practicidad que necesita. Elija el espacio ideal para su estadía en Foz do Iguaçu.",
		"booking_page.form_title":    "Finalizar Reserva",
		"booking_page.form_subtitle": "Confirme los detalles de su estadía a continuación.",

		"booking.title":            "Finalizar Reserva",
		"booking.subtitle":         "Confirme los detalles de su estadía a continuación.",
		"booking.accommodation":    "Alojamiento",
		"booking.guests_label":     "¿Cuántas personas?",
		"booking.kitchen_label":    "¿Cocina?",
		"booking.kitchen_any":      "Indiferente",
		"booking.kitchen_yes":      "Sí",
		"booking.kitchen_no":       "No",
		"booking.choose_suite":     "Elija su Suite:",
		"booking.no_rooms":         "No se encontraron suites con estos filtros.",
		"booking.your_data":        "Sus Datos",
		"booking.name_label":       "Nombre Completo",
		"booking.name_placeholder": "Como en el documento",
		"booking.cpf_label":        "DNI / Cédula / CPF",
		"booking.cpf_placeholder":  "Número de documento",
		"booking.phone_label":      "WhatsApp / Teléfono",
		"booking.checkin":          "Fecha de Entrada",
		"booking.checkout":         "Fecha de Salida",
		"booking.summary_suite":    "Suite Seleccionada",
		"booking.duration":         "Duración",
		"booking.night":            "noche",
		"booking.nights":           "noches",
		"booking.total":            "Total Estimado",
		"booking.confirm":          "Ir a Pagar",
		"booking.whatsapp_note":    "Al hacer clic, será redirigido a nuestro motor de reservas seguro de Stays.net para completar el pago.",

		"booking.err_required":      "Obligatorio",
		"booking.err_name_invalid":  "Nombre inválido",
		"booking.err_phone_invalid": "Teléfono inválido",
		"booking.err_date_invalid":  "Fecha inválida",

		"footer.brand_sub": "Residencial",
		"footer.desc":      "Excelencia en hospitalidad en Residencial Shalfa. Confort y sofisticación en cada detalle.",
		"footer.contact":   "Contacto",
		"footer.social":    "Social",
		"footer.rights":    "Todos los derechos reservados.",
	},
}

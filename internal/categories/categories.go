// Package categories holds the static expense taxonomy. It is a fixed,
// ordered list of groups loaded once at process start; it is never
// mutated at runtime and not persisted per user.
package categories

// Group is one titled group of category names.
type Group struct {
	Title string   `json:"title" example:"Alimentacion"`
	Items []string `json:"items"`
}

// defaultCategory is the category a fresh selection starts on. Its group
// is the default group.
const defaultCategory = "Supermercado"

var groups = []Group{
	{
		Title: "Vivienda",
		Items: []string{"Alquiler", "Hipoteca", "Administracion", "Mantenimiento", "Reparaciones", "Muebles", "Seguro hogar"},
	},
	{
		Title: "Servicios",
		Items: []string{"Electricidad", "Agua", "Gas", "Internet", "Telefono", "Television", "Basura"},
	},
	{
		Title: "Alimentacion",
		Items: []string{"Supermercado", "Restaurante", "Cafe", "Delivery", "Panaderia", "Snacks"},
	},
	{
		Title: "Transporte",
		Items: []string{"Combustible", "Transporte publico", "Taxi", "Parking", "Peajes", "Mantenimiento vehiculo", "Seguro vehiculo", "Repuestos"},
	},
	{
		Title: "Salud",
		Items: []string{"Seguro medico", "Medicinas", "Consultas", "Dentista", "Optica", "Terapia"},
	},
	{
		Title: "Educacion",
		Items: []string{"Cursos", "Libros", "Materiales", "Matricula"},
	},
	{
		Title: "Trabajo",
		Items: []string{"Herramientas", "Oficina", "Coworking", "Capacitacion"},
	},
	{
		Title: "Familia",
		Items: []string{"Guarderia", "Colegio", "Actividades hijos", "Pension"},
	},
	{
		Title: "Mascotas",
		Items: []string{"Comida mascotas", "Veterinario", "Accesorios mascotas"},
	},
	{
		Title: "Ropa y cuidado personal",
		Items: []string{"Ropa", "Calzado", "Lavanderia", "Peluqueria", "Cosmeticos", "Cuidado personal"},
	},
	{
		Title: "Ocio",
		Items: []string{"Entretenimiento", "Cine", "Streaming", "Videojuegos", "Deportes", "Eventos"},
	},
	{
		Title: "Viajes",
		Items: []string{"Vuelos", "Alojamiento", "Transporte viaje", "Comidas viaje", "Tours"},
	},
	{
		Title: "Finanzas",
		Items: []string{"Comisiones bancarias", "Intereses", "Tarjeta credito", "Prestamos", "Impuestos", "Multas"},
	},
	{
		Title: "Suscripciones",
		Items: []string{"Gimnasio", "Software", "Apps", "Musica"},
	},
	{
		Title: "Regalos y donaciones",
		Items: []string{"Regalos", "Donaciones", "Celebraciones"},
	},
	{
		Title: "Otros",
		Items: []string{"Hogar", "Limpieza", "Otros"},
	},
}

// Groups returns the taxonomy in its fixed order.
func Groups() []Group {
	return groups
}

// All returns every category name, in group order.
func All() []string {
	var all []string
	for _, group := range groups {
		all = append(all, group.Items...)
	}

	return all
}

// GroupByTitle returns the group with an exactly matching title. When no
// group matches, the first group is returned as the defined fallback.
func GroupByTitle(title string) Group {
	for _, group := range groups {
		if group.Title == title {
			return group
		}
	}

	return groups[0]
}

// DefaultGroup is the group a fresh selection starts on: the one holding
// the default category, falling back to the first group.
func DefaultGroup() Group {
	for _, group := range groups {
		for _, item := range group.Items {
			if item == defaultCategory {
				return group
			}
		}
	}

	return groups[0]
}

// ResolveSelection keeps a (group, category) selection consistent: when
// the category is not part of the selected group, it resets to the
// group's first entry.
func ResolveSelection(groupTitle, category string) (Group, string) {
	group := GroupByTitle(groupTitle)

	for _, item := range group.Items {
		if item == category {
			return group, category
		}
	}

	return group, group.Items[0]
}

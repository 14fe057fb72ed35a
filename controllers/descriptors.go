package controllers

import "sports-school/repository"

// One descriptor per entity; the repository builds the shared CRUD SQL
// from these instead of each controller hand-rolling its own.
var (
	studentDesc = repository.Descriptor{
		Table:         "students",
		SearchColumns: []string{"first_name", "last_name", "phone", "login"},
	}

	studentViewDesc = repository.Descriptor{
		Table:         "students",
		SearchColumns: []string{"first_name", "last_name", "phone"},
	}

	coachDesc = repository.Descriptor{
		Table:         "coaches",
		SearchColumns: []string{"c.first_name", "c.last_name", "c.phone", "c.login", "s.name"},
	}

	sportTypeDesc = repository.Descriptor{
		Table:       "sport_types",
		ImageColumn: "image_path",
	}

	sliderDesc = repository.Descriptor{
		Table:       "sliders",
		ImageColumn: "image_path",
	}

	newsDesc = repository.Descriptor{
		Table:   "news",
		OrderBy: "date DESC",
	}

	scheduleDesc = repository.Descriptor{
		Table:   "training_schedule",
		OrderBy: "date, time",
	}

	resultDesc = repository.Descriptor{
		Table:       "results",
		ImageColumn: "image_path",
		OrderBy:     "date DESC",
	}
)

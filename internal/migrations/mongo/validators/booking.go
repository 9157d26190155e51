package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"service_type",
			"duration_minutes",
			"date",
			"slot_label",
			"pet",
			"owner",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 12,
				"maxLength": 12,
				"pattern":   "^[A-Z0-9]{12}$",
			},

			"service_type": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"service_size": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},

			"add_ons": bson.M{
				"bsonType": "array",
				"maxItems": 10,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"name", "price"},
					"properties": bson.M{
						"name": bson.M{
							"bsonType":  "string",
							"minLength": 2,
							"maxLength": 50,
						},
						"price": bson.M{
							"bsonType": []string{"int", "long"},
							"minimum":  0,
						},
					},
				},
			},

			"total_price": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},

			"duration_minutes": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  15,
				"maximum":  480,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}$",
			},

			"slot_label": bson.M{
				"bsonType":  "string",
				"minLength": 5,
				"maxLength": 50,
			},

			"pet": bson.M{
				"bsonType": "object",
				"required": []string{"name", "breed"},
				"properties": bson.M{
					"name": bson.M{
						"bsonType":  "string",
						"minLength": 1,
						"maxLength": 50,
					},
					"breed": bson.M{
						"bsonType":  "string",
						"minLength": 2,
						"maxLength": 50,
					},
				},
			},

			"owner": bson.M{
				"bsonType": "object",
				"required": []string{"name", "contact_number", "email"},
				"properties": bson.M{
					"name": bson.M{
						"bsonType":  "string",
						"minLength": 2,
						"maxLength": 100,
					},
					"contact_number": bson.M{
						"bsonType":  "string",
						"minLength": 7,
						"maxLength": 20,
					},
					"email": bson.M{
						"bsonType":  "string",
						"maxLength": 254,
					},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

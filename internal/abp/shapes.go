package abp

// The shape catalog below transcribes the record layouts of the AddressBase
// Premium technical specification v2.3 (March 2016), all fields of all
// record types. Field order is load-bearing: source rows are positional.
// UPRN and USRN are integers per the specification and may run to 12 digits,
// hence the wide integer type.

// Default returns the full AddressBase Premium catalog.
func Default() *Registry {
	return NewRegistry(
		headerShape(),
		streetShape(),
		streetDescriptorShape(),
		blpuShape(),
		applicationCrossReferenceShape(),
		lpiShape(),
		deliveryPointAddressShape(),
		metadataShape(),
		successorCrossReferenceShape(),
		organisationShape(),
		classificationShape(),
		trailerShape(),
	)
}

func headerShape() *RecordShape { // type 10
	return &RecordShape{
		Code:  "10",
		Name:  "Header",
		Table: "headers",
		Fields: []FieldSpec{
			text("CUSTODIAN_NAME", 40),
			integer("LOCAL_CUSTODIAN_CODE"),
			date("PROCESS_DATE"),
			integer("VOLUME_NUMBER"),
			date("ENTRY_DATE"),
			timeOfDay("TIME_STAMP"),
			text("VERSION", 7),
			text("FILE_TYPE", 1),
		},
	}
}

func streetShape() *RecordShape { // type 11
	return &RecordShape{
		Code:  "11",
		Name:  "Street",
		Table: "streets",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("USRN")),
			text("RECORD_TYPE", 1),
			integer("SWA_ORG_REF_NAMING"),
			text("STATE", 1),
			date("STATE_DATE"),
			text("STREET_SURFACE", 1),
			text("STREET_CLASSIFICATION", 2),
			integer("VERSION"),
			date("STREET_START_DATE"),
			date("STREET_END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("RECORD_ENTRY_DATE"),
			decimal("STREET_START_X", 8, 2),
			decimal("STREET_START_Y", 9, 2),
			decimal("STREET_START_LAT", 9, 7),
			decimal("STREET_START_LONG", 8, 7),
			decimal("STREET_END_X", 8, 2),
			decimal("STREET_END_Y", 9, 2),
			decimal("STREET_END_LAT", 9, 7),
			decimal("STREET_END_LONG", 8, 7),
			integer("STREET_TOLERANCE"),
		},
	}
}

func streetDescriptorShape() *RecordShape { // type 15
	return &RecordShape{
		Code:  "15",
		Name:  "Street Descriptor",
		Table: "street_descriptors",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("USRN")),
			text("STREET_DESCRIPTION", 100),
			text("LOCALITY_NAME", 35),
			text("TOWN_NAME", 30),
			text("ADMINISTRATIVE_AREA", 30),
			text("LANGUAGE", 3),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
		},
	}
}

func blpuShape() *RecordShape { // type 21
	return &RecordShape{
		Code:  "21",
		Name:  "BLPU",
		Table: "blpus",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("UPRN")),
			text("LOGICAL_STATUS", 1),
			text("BLPU_STATE", 1),
			date("BLPU_STATE_DATE"),
			wideInteger("PARENT_UPRN"),
			decimal("X_COORDINATE", 8, 2),
			decimal("Y_COORDINATE", 9, 2),
			decimal("LATITUDE", 9, 7),
			decimal("LONGITUDE", 8, 7),
			text("RPC", 1),
			integer("LOCAL_CUSTODIAN_CODE"),
			text("COUNTRY", 1),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
			text("ADDRESSBASE_POSTAL", 1),
			indexed(text("POSTCODE_LOCATOR", 8)),
			wideInteger("MULTI_OCC_COUNT"),
		},
	}
}

func applicationCrossReferenceShape() *RecordShape { // type 23
	return &RecordShape{
		Code:  "23",
		Name:  "Application Cross Reference",
		Table: "application_cross_references",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("UPRN")),
			text("XREF_KEY", 14),
			text("CROSS_REFERENCE", 50),
			integer("VERSION"),
			text("SOURCE", 6),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
		},
	}
}

func lpiShape() *RecordShape { // type 24
	return &RecordShape{
		Code:  "24",
		Name:  "LPI",
		Table: "lpis",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("UPRN")),
			text("LPI_KEY", 14),
			text("LANGUAGE", 3),
			text("LOGICAL_STATUS", 1),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
			integer("SAO_START_NUMBER"),
			text("SAO_START_SUFFIX", 2),
			wideInteger("SAO_END_NUMBER"),
			text("SAO_END_SUFFIX", 2),
			text("SAO_TEXT", 90),
			integer("PAO_START_NUMBER"),
			text("PAO_START_SUFFIX", 2),
			integer("PAO_END_NUMBER"),
			text("PAO_END_SUFFIX", 2),
			text("PAO_TEXT", 90),
			integer("USRN"),
			text("USRN_MATCH_INDICATOR", 1),
			text("AREA_NAME", 40),
			text("LEVEL", 30),
			text("OFFICIAL_FLAG", 1),
		},
	}
}

func deliveryPointAddressShape() *RecordShape { // type 28
	return &RecordShape{
		Code:  "28",
		Name:  "Delivery Point Address",
		Table: "delivery_point_addresses",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("UPRN")),
			indexed(wideInteger("UDPRN")),
			text("ORGANISATION_NAME", 60),
			text("DEPARTMENT_NAME", 60),
			text("SUB_BUILDING_NAME", 30),
			text("BUILDING_NAME", 50),
			integer("BUILDING_NUMBER"),
			text("DEPENDENT_THOROUGHFARE", 80),
			text("THOROUGHFARE", 80),
			text("DOUBLE_DEPENDENT_LOCALITY", 35),
			text("DEPENDENT_LOCALITY", 35),
			text("POST_TOWN", 30),
			indexed(text("POSTCODE", 8)),
			text("POSTCODE_TYPE", 1),
			text("DELIVERY_POINT_SUFFIX", 2),
			text("WELSH_DEPENDENT_THOROUGHFARE", 80),
			text("WELSH_THOROUGHFARE", 80),
			text("WELSH_DOUBLE_DEPENDENT_LOCALITY", 35),
			text("WELSH_DEPENDENT_LOCALITY", 35),
			text("WELSH_POST_TOWN", 30),
			text("PO_BOX_NUMBER", 6),
			date("PROCESS_DATE"),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
		},
	}
}

func metadataShape() *RecordShape { // type 29
	return &RecordShape{
		Code:  "29",
		Name:  "MetaData",
		Table: "metadata_records",
		Fields: []FieldSpec{
			text("GAZ_NAME", 60),
			text("GAZ_SCOPE", 60),
			text("TER_OF_USE", 60),
			text("LINKED_DATA", 100),
			text("GAZ_OWNER", 15),
			text("NGAZ_FREQ", 1),
			text("CUSTODIAN_NAME", 40),
			wideInteger("CUSTODIAN_UPRN"),
			integer("LOCAL_CUSTODIAN_CODE"),
			text("CO_ORD_SYSTEM", 40),
			text("CO_ORD_UNIT", 10),
			date("META_DATE"),
			text("CLASS_SCHEME", 60),
			date("GAZ_DATE"),
			text("LANGUAGE", 3),
			text("CHARACTER_SET", 30),
		},
	}
}

func successorCrossReferenceShape() *RecordShape { // type 30
	return &RecordShape{
		Code:  "30",
		Name:  "Successor Cross Reference",
		Table: "successor_cross_references",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			wideInteger("UPRN"),
			text("SUCC_KEY", 14),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
			wideInteger("SUCCESSOR"),
		},
	}
}

func organisationShape() *RecordShape { // type 31
	return &RecordShape{
		Code:  "31",
		Name:  "Organisation",
		Table: "organisations",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("UPRN")),
			text("ORG_KEY", 14),
			text("ORGANISATION", 100),
			text("LEGAL_NAME", 60),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
		},
	}
}

func classificationShape() *RecordShape { // type 32
	return &RecordShape{
		Code:  "32",
		Name:  "Classification",
		Table: "classifications",
		Fields: []FieldSpec{
			text("CHANGE_TYPE", 1),
			wideInteger("PRO_ORDER"),
			indexed(wideInteger("UPRN")),
			text("CLASS_KEY", 14),
			indexed(text("CLASSIFICATION_CODE", 6)),
			text("CLASS_SCHEME", 60),
			decimal("SCHEME_VERSION", 2, 1),
			date("START_DATE"),
			date("END_DATE"),
			date("LAST_UPDATE_DATE"),
			date("ENTRY_DATE"),
		},
	}
}

func trailerShape() *RecordShape { // type 99
	return &RecordShape{
		Code:  "99",
		Name:  "Trailer",
		Table: "trailers",
		Fields: []FieldSpec{
			integer("NEXT_VOLUME_NUMBER"),
			wideInteger("RECORD_COUNT"),
			date("ENTRY_DATE"),
			timeOfDay("TIME_STAMP"),
		},
	}
}

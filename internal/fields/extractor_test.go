package fields

import (
	"reflect"
	"testing"
)

const sampleContract = `CONTRATO N° 045-2023-ABC

Conste por el presente documento el contrato que celebran LA ENTIDAD,
con RUC N° 20131312955, y EL CONTRATISTA, con RUC N° 20609876543,
representado legalmente por JUAN CARLOS PEREZ QUISPE, identificado con DNI.

Derivado de la Adjudicación Simplificada N° 012-2023-UNI.

CLÁUSULA PRIMERA: OBJETO
El presente contrato tiene por objeto la
adquisición de equipos de cómputo
CLÁUSULA SEGUNDA: MONTO
El Monto total asciende a S/ 45,500.00 soles.
La vigencia del contrato rige hasta el 31 de diciembre de 2023.
`

func TestExtractSampleContract(t *testing.T) {
	got := NewExtractor().Extract(sampleContract)

	want := map[string]string{
		"num_contrato":                    "045-2023-ABC",
		"proceso_seleccion":               "Adjudicación Simplificada 012-2023-UNI",
		"ruc_entidad":                     "20131312955",
		"ruc_contratista":                 "20609876543",
		"representante_legal_contratista": "JUAN CARLOS PEREZ QUISPE",
		"objeto_contrato":                 "El presente contrato tiene por objeto la adquisición de equipos de cómputo",
		"monto_contratado_total":          "45,500.00",
		"vigencia_final":                  "el 31 de diciembre de 2023",
	}
	for key, val := range want {
		if got[key] != val {
			t.Errorf("Extract()[%q] = %q, want %q", key, got[key], val)
		}
	}
}

func TestExtractSingleFieldOnly(t *testing.T) {
	got := NewExtractor().Extract("CONTRATO N° 045-2023-ABC")

	if got["num_contrato"] != "045-2023-ABC" {
		t.Errorf("num_contrato = %q, want %q", got["num_contrato"], "045-2023-ABC")
	}
	for _, key := range Keys() {
		if key == "num_contrato" {
			continue
		}
		if got[key] != NotFound {
			t.Errorf("Extract()[%q] = %q, want sentinel %q", key, got[key], NotFound)
		}
	}
}

func TestExtractEmptyText(t *testing.T) {
	got := NewExtractor().Extract("")
	if len(got) != len(Keys()) {
		t.Fatalf("Extract() returned %d keys, want %d", len(got), len(Keys()))
	}
	for key, val := range got {
		if val != NotFound {
			t.Errorf("Extract()[%q] = %q, want sentinel", key, val)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	x := NewExtractor()
	first := x.Extract(sampleContract)
	second := x.Extract(sampleContract)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Extract() differs:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	got := NewExtractor().Extract("contrato n° 001-2024-XYZ")
	if got["num_contrato"] != "001-2024-XYZ" {
		t.Errorf("num_contrato = %q, want match regardless of case", got["num_contrato"])
	}
}

func TestExtractMultiGroupJoin(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "process with number joins both groups",
			text: "mediante Adjudicación Simplificada N° 007-2022-MTC convocada",
			want: "Adjudicación Simplificada 007-2022-MTC",
		},
		{
			name: "process without number keeps single group",
			text: "mediante Licitación Pública convocada por la entidad",
			want: "Licitación Pública",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewExtractor().Extract(tt.text)
			if got["proceso_seleccion"] != tt.want {
				t.Errorf("proceso_seleccion = %q, want %q", got["proceso_seleccion"], tt.want)
			}
		})
	}
}

func TestExtractNormalizesWhitespace(t *testing.T) {
	text := "CLÁUSULA PRIMERA: OBJETO\nservicio   de\n\nmantenimiento\npreventivo\nCLÁUSULA SEGUNDA"
	got := NewExtractor().Extract(text)
	want := "servicio de mantenimiento preventivo"
	if got["objeto_contrato"] != want {
		t.Errorf("objeto_contrato = %q, want %q", got["objeto_contrato"], want)
	}
}

func TestExtractFieldSpansLines(t *testing.T) {
	// "." must cross the line break between "vigencia" and "hasta"
	text := "La vigencia del presente contrato\nse extiende hasta el 15 de enero de 2025.\n"
	got := NewExtractor().Extract(text)
	if got["vigencia_final"] != "el 15 de enero de 2025" {
		t.Errorf("vigencia_final = %q, want %q", got["vigencia_final"], "el 15 de enero de 2025")
	}
}

func TestKeysOrder(t *testing.T) {
	want := []string{
		"num_contrato",
		"fecha_suscripcion_contrato",
		"proceso_seleccion",
		"vigencia_final",
		"monto_contratado_total",
		"ruc_contratista",
		"ruc_entidad",
		"resolucion",
		"num_item",
		"objeto_contrato",
		"plazo_ejecucion",
		"representante_legal_contratista",
	}
	if got := Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

// Package fields mines contract text for a fixed set of structured values.
package fields

import "github.com/dlclark/regexp2"

// NotFound is recorded for any field whose pattern has no match.
const NotFound = "No encontrado"

// Pattern is one row of the extraction table: a field key plus the compiled
// expression that pulls its value out of the text.
type Pattern struct {
	Key string
	re  *regexp2.Regexp
}

// Patterns match case-insensitively and let "." cross line breaks, since a
// field's content regularly spans several lines of a scanned contract.
const exprOptions = regexp2.IgnoreCase | regexp2.Singleline

func mustPattern(key, expr string) Pattern {
	return Pattern{Key: key, re: regexp2.MustCompile(expr, exprOptions)}
}

// patterns is the fixed extraction table, in report column order. Built once
// at init and never mutated.
var patterns = []Pattern{
	mustPattern("num_contrato",
		`(?:CONTRATO|ORDEN DE SERVICIO|ORDEN DE COMPRA)\s*(?:N[°º.\sro]+[:\s]*)?([\w\d\-\/.]+)`),
	mustPattern("fecha_suscripcion_contrato",
		`(?:en la ciudad de|firmado el|celebrado a los|Fecha:|a los)\s*.*?(\d{1,2}\s+(?:de\s+)?\w+\s+(?:de\s+)?\d{4})`),
	mustPattern("proceso_seleccion",
		`(Adjudicaci[oó]n Simplificada|Licitaci[oó]n P[úu]blica|Concurso P[úu]blico)(?:\s*N[°º.\sro]+[:\s]*([\w\d\-\/]+))?`),
	mustPattern("vigencia_final",
		`vigencia.*?\s+hasta\s+(.*?)(?:\.|\n|CL[ÁA]USULA)`),
	mustPattern("monto_contratado_total",
		`(?:Monto|Valor Total|asciende a)\s*.*?(?:S\/\.?|R\$|USD)?\s*([\d,]+(?:\.\d{2})?)`),
	mustPattern("ruc_contratista",
		`CONTRATISTA[\s\S]*?RUC\s*N[°º.\sro]*\s*(\d{11})`),
	mustPattern("ruc_entidad",
		`(?:LA\s+ENTIDAD|CONTRATANTE)[\s\S]*?RUC\s*N[°º.\sro]*\s*(\d{11})`),
	mustPattern("resolucion",
		`RESOLUCI[OÓ]N\s*(?:DECANAL|RECTORAL|DIRECTORAL)?\s*N[°º.\sro]+[:\s]*([\w\d\-\/.-]+)`),
	mustPattern("num_item",
		`(?:Ítem|Item)\s*(?:N[°º.\sro]+)?\s*[:]?\s*(\d+)`),
	// These two need the lookahead to stop at the next clause heading.
	mustPattern("objeto_contrato",
		`CL[ÁA]USULA\s+PRIMERA\s*:\s*OBJETO[\s\S]*?([\s\S]*?)(?=CL[ÁA]USULA\s+SEGUNDA|II\.\s+BASE\s+LEGAL)`),
	mustPattern("plazo_ejecucion",
		`PLAZO\s+DE\s+(?:EJECUCI[OÓ]N|ENTREGA)[\s\S]*?([\s\S]*?)(?=CL[ÁA]USULA|INICIO\s+DEL\s+PLAZO)`),
	mustPattern("representante_legal_contratista",
		`representad[oa]\s+(?:legalmente\s+)?por\s+([^,]+(?:,\s*Jr\.|,\s*S\.A\.C\.)?),`),
}

// Keys returns the field keys in table order.
func Keys() []string {
	keys := make([]string, len(patterns))
	for i, p := range patterns {
		keys[i] = p.Key
	}
	return keys
}

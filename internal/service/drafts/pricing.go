package drafts

import "github.com/m04kA/GCC-TeeSheetService/internal/domain"

// ComputeCartSplits распределяет плату за кары по строкам черновика.
//
// Политика "shared cart": игроки, попросившие кар, объединяются в пары
// в порядке строк формы. Пара делит один кар и платит по половине ставки пары:
//   - если в паре есть член клуба - ставка пары равна его цене кара
//     (при двух членах клуба с разными ценами берётся большая);
//   - иначе - максимум из двух цен посетителей.
// Непарная последняя строка платит свою полную индивидуальную цену.
//
// Возвращает map строка -> начисление за кар; строки без запроса кара
// в map отсутствуют (начисление 0).
func ComputeCartSplits(rows []*domain.DraftRow) map[int64]float64 {
	splits := make(map[int64]float64)

	carted := make([]*domain.DraftRow, 0, len(rows))
	for _, row := range rows {
		if row.CartRequested {
			carted = append(carted, row)
		}
	}

	for i := 0; i+1 < len(carted); i += 2 {
		rate := pairRate(carted[i], carted[i+1])
		splits[carted[i].ID] = rate / 2
		splits[carted[i+1].ID] = rate / 2
	}

	if len(carted)%2 == 1 {
		last := carted[len(carted)-1]
		splits[last.ID] = last.IndividualCartPrice()
	}

	return splits
}

// pairRate возвращает ставку пары за один кар
func pairRate(a, b *domain.DraftRow) float64 {
	switch {
	case a.IsMember() && b.IsMember():
		// Оба помечены членами клуба с разными ценами - берём большую.
		// Политика унаследована от про-шопа, см. DESIGN.md
		return maxPrice(a.IndividualCartPrice(), b.IndividualCartPrice())
	case a.IsMember():
		return a.IndividualCartPrice()
	case b.IsMember():
		return b.IndividualCartPrice()
	default:
		return maxPrice(a.IndividualCartPrice(), b.IndividualCartPrice())
	}
}

func maxPrice(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// DraftTotal возвращает сумму черновика: по каждой строке - разрешённая
// цена тарифа плюс начисление за кар. Строки без цены дают 0, но помечаются
// флагом PricingUnavailable в ответе, а не молча считаются бесплатными
func DraftTotal(rows []*domain.DraftRow) float64 {
	splits := ComputeCartSplits(rows)

	var total float64
	for _, row := range rows {
		fee, _ := row.ResolvedFee()
		total += fee + splits[row.ID]
	}

	return total
}

package domain

// Rect - осевой прямоугольник в координатах плана этажа.
// Начало координат - левый верхний угол. Значения читаются из floor_data
// и после загрузки не меняются.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ContainsCenter возвращает true, если центр subject лежит внутри r.
// Тест закрытый (включительный) по обеим осям: мебель, чей центр попал
// ровно на границу, принадлежит той комнате, чья граница совпала первой.
// Это единственный примитив пространственного распределения - полное
// пересечение прямоугольников здесь намеренно НЕ используется, иначе
// мебель на стыке двух комнат попала бы в обе.
func (r Rect) ContainsCenter(subject Rect) bool {
	cx, cy := subject.Center()
	return cx >= r.X && cx <= r.X+r.Width &&
		cy >= r.Y && cy <= r.Y+r.Height
}

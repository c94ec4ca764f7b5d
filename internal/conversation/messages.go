package conversation

// ChooseModelPrompt captions the inline keyboard with the four model
// choices.
const ChooseModelPrompt = "Выберите тип модели:"

const (
	msgSelectFirst  = "Пожалуйста, сначала выберите тип модели."
	msgPredictError = "Ошибка при получении предсказания."
	msgGenericError = "Произошла ошибка. Пожалуйста, попробуйте еще раз."
	msgTryAgain     = " Пожалуйста, попробуйте еще раз."
	msgAllNumeric   = "Все значения должны быть числовые. Пожалуйста, попробуйте еще раз."
	msgChoiceError  = "Ошибочка, попробуйте ещё раз :("

	msgChoseBrainTumor  = "Вы выбрали Brain Tumor. Пожалуйста, отправьте изображение МРТ головного мозга."
	msgChosePneumonia   = "Вы выбрали Pneumonia. Пожалуйста, отправьте рентгеновский снимок."
	msgChoseHeartAttack = "Вы выбрали Heart Attack. Пожалуйста, отправьте список параметров через запятую, без пробелов."
	msgChoseDiabetes    = "Вы выбрали Diabetes. Пожалуйста, отправьте список параметров через запятую."

	msgPredictedClass     = "Предсказанный класс: %s"
	msgProbabilitiesTitle = "Вероятности принадлежности к классам: \n"
)

// heartLegend lists the 11 heart_attack fields in submission order.
const heartLegend = `Возраст (Age) - в годах
Пол (Sex) - M: Мужской, F: Женский
Тип боли в груди (ChestPainType) - TA: Типичная стенокардия, ATA: Атипичная стенокардия, NAP: Не стенокардическая боль, ASY: Ассимптоматическая
Артериальное давление в покое (RestingBP) - в мм рт. ст.
Холестерин (Cholesterol) - уровень в сыворотке [мм/дл]
Уровень сахара в крови натощак (FastingBS) - 1: если FastingBS > 120 мг/дл, 0: в противном случае
Результаты ЭКГ в покое (RestingECG) - Normal: Нормально, ST: наличие аномалий волны ST-T (инверсии T-волны и/или подъем или падение ST > 0.05 мВ), LVH: вероятная или определенная гипертрофия левого желудочка по критериям Эстеса
Максимальная частота сердечных сокращений (MaxHR) - числовое значение от 60 до 202
Стенокардия при физической нагрузке (ExerciseAngina) - Y: Да, N: Нет
Старый пик (Oldpeak) - числовое значение, измеренное в депрессии
Наклон ST-сегмента (ST_Slope) - Up: восходящий, Flat: плоский, Down: нисходящий`

// diabetesLegend lists the 8 diabetes fields in submission order.
const diabetesLegend = `Беременности (Pregnancies): количество беременностей
Глюкоза (Glucose): уровень глюкозы в крови
Артериальное давление (BloodPressure)
Толщина кожи (SkinThickness)
Инсулин (Insulin): уровень инсулина в крови
Индекс массы тела (BMI)
Функция диабетического предрасположения (DiabetesPedigreeFunction)
Возраст (Age)`

// HelpText is the /help reply.
const HelpText = `Отправьте /start и выберите модель кнопкой.
Для Brain Tumor и Pneumonia пришлите изображение, для Heart Attack и Diabetes — список параметров через запятую.
/info — информация об используемых моделях.`

// InfoText is the /info reply.
const InfoText = `Чтобы увидеть информацию по используемым моделям, перейдите по ссылкам
всё о свертках для обработки изображений - https://en.wikipedia.org/wiki/Convolutional_neural_network
всё о моделях классификаций - https://en.wikipedia.org/wiki/Statistical_classification`
